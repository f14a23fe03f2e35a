package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "classic",
			input:      "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2\n",
			wantCode:   exitOK,
			wantStdout: "3\n",
		},
		{
			name:       "malformed line",
			input:      "#1 @ 1,3: 4x4\n#2 @ 3,1: 4by4\n#3 @ 5,5: 2x2\n",
			wantCode:   exitMalformed,
			wantStdout: "#2 @ 3,1: 4by4\n",
		},
		{
			name:       "identical claims",
			input:      "#1 @ 0,0: 1x1\n#2 @ 0,0: 1x1\n",
			wantCode:   exitNoIntactClaim,
			wantStdout: "",
			wantStderr: "no intact claim found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run([]string{"-f", writeInput(t, tt.input)}, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-f", filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "missing.txt")
}

func TestRun_AreaLimit(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-f", writeInput(t, "#1 @ 0,0: 100000x100000\n"), "-MaxArea", "1048576"}, &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "claim #1")
}

func TestRun_ProgressKeepsStdoutClean(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-f", writeInput(t, "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2\n"), "-Progress", "On"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Contains(t, stderr.String(), "Accumulating claims")
}
