package survey

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/HuXin0817/fabric-claims/pkg/models/claim"
	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/HuXin0817/fabric-claims/pkg/models/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicInput = `#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
`

func TestSurvey_Classic(t *testing.T) {
	result, err := Survey(context.Background(), strings.NewReader(classicInput))
	require.NoError(t, err)

	assert.Len(t, result.Claims, 3)
	assert.Equal(t, 4, result.Report.OverlappedArea)
	assert.Equal(t, 32, result.Report.CoveredArea)
	assert.Equal(t, 3, result.Report.ClaimCount)
	assert.True(t, result.Report.HasIntactClaim)
	assert.Equal(t, 3, result.Report.IntactClaimId)
	assert.Equal(t, message.NewDigest([]byte(classicInput)), result.Report.Digest)
	assert.NotEmpty(t, result.Report.RunUid)
}

func TestSurvey_NoIntactClaim(t *testing.T) {
	result, err := Survey(context.Background(), strings.NewReader("#1 @ 0,0: 1x1\n#2 @ 0,0: 1x1\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Report.OverlappedArea)
	assert.False(t, result.Report.HasIntactClaim)
	assert.Zero(t, result.Report.IntactClaimId)
}

func TestSurvey_Malformed(t *testing.T) {
	_, err := Survey(context.Background(), strings.NewReader("#1 @ 1,3: 4x4\nnot a claim\n"))

	var malformed *claim.MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "not a claim", malformed.Line)
	assert.Equal(t, 2, malformed.LineNumber)
}

func TestSurvey_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Survey(ctx, strings.NewReader(classicInput))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSurvey_WithProgress(t *testing.T) {
	var out bytes.Buffer

	result, err := Survey(context.Background(), strings.NewReader(classicInput),
		WithProgress(model.On, model.WithWriter(&out)))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Report.OverlappedArea)
	assert.Contains(t, out.String(), "Accumulating claims")
}

func TestSurvey_MaxArea(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		maxArea int
		wantErr bool
	}{
		{
			name:    "classic within limit",
			input:   classicInput,
			maxArea: 36,
		},
		{
			name:    "total past limit",
			input:   classicInput,
			maxArea: 35,
			wantErr: true,
		},
		{
			name:    "single huge claim",
			input:   "#1 @ 0,0: 100000x100000\n",
			maxArea: 1 << 20,
			wantErr: true,
		},
		{
			name:    "no limit",
			input:   "#1 @ 0,0: 10x10\n",
			maxArea: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Survey(context.Background(), strings.NewReader(tt.input), WithMaxArea(tt.maxArea))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAreaLimit)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
		})
	}
}
