package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_String(t *testing.T) {
	r := Report{
		TimeStamp:      NewTimeStamp(time.Date(2018, 12, 3, 5, 0, 0, 0, time.UTC)),
		RunUid:         "run",
		Digest:         NewDigest([]byte("#1 @ 1,3: 4x4\n")),
		ClaimCount:     3,
		CoveredArea:    32,
		OverlappedArea: 4,
		IntactClaimId:  3,
		HasIntactClaim: true,
	}

	parsed, err := NewReport(r.String())
	require.NoError(t, err)
	assert.Equal(t, r, parsed)
	assert.Contains(t, r.String(), `"overlappedArea":4`)
}

func TestReport_OmitsMissingIntactClaim(t *testing.T) {
	r := Report{ClaimCount: 2, OverlappedArea: 1}

	assert.NotContains(t, r.String(), "intactClaimId")
	assert.Contains(t, r.String(), `"hasIntactClaim":false`)
}

func TestNewReport_Invalid(t *testing.T) {
	_, err := NewReport("{not json")
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	a := NewDigest([]byte("#1 @ 1,3: 4x4\n"))
	b := NewDigest([]byte("#1 @ 1,3: 4x4\n"))
	c := NewDigest([]byte("#1 @ 1,3: 4x5\n"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "survey:"+string(a), a.CacheKey())
	assert.NotEqual(t, a.CacheKey(), a.LockName())
}

func TestTimeStamp(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 15, 999, time.FixedZone("CET", 3600))
	ts := NewTimeStamp(now)

	assert.Equal(t, TimeStamp("2026-10-18 08:30:15"), ts)

	parsed, err := ts.Time()
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now.Truncate(time.Second)))
}

func TestNewRunUid(t *testing.T) {
	a, b := NewRunUid(), NewRunUid()

	assert.Len(t, string(a), 36)
	assert.NotEqual(t, a, b)
}
