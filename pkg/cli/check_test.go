package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name       string
		setupFiles map[string]string
		wantErr    string
	}{
		{
			name: "no proto files in directory",
			setupFiles: map[string]string{
				"proto/readme.txt": "nothing to parse here",
			},
			wantErr: "no proto files found",
		},
		{
			name: "valid proto file",
			setupFiles: map[string]string{
				"proto/order.proto": orderProto,
			},
		},
		{
			name: "multiple valid proto files",
			setupFiles: map[string]string{
				"proto/one.proto": `package a;
message One { bool ok = 1; }`,
				"proto/two.proto": `package b;
message Two { bool ok = 1; }`,
			},
		},
		{
			name: "syntax error reported",
			setupFiles: map[string]string{
				"proto/broken.proto": brokenProto,
			},
			wantErr: "1 of 1 files failed",
		},
		{
			name: "mixed valid and invalid proto files",
			setupFiles: map[string]string{
				"proto/order.proto":  orderProto,
				"proto/broken.proto": brokenProto,
			},
			wantErr: "1 of 2 files failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDir := setupFiles(t, tt.setupFiles)

			output, err := captureStdout(t, func() error {
				return runCheck([]string{"-dir", filepath.Join(testDir, "proto")})
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, output, "All proto files are valid")
		})
	}
}

func TestCheckCommand_ReportsTypeCount(t *testing.T) {
	testDir := setupFiles(t, map[string]string{
		"proto/order.proto": orderProto,
	})

	output, err := captureStdout(t, func() error {
		return runCheck([]string{"-dir", filepath.Join(testDir, "proto")})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "order.proto: ok (2 types)")
}

func TestCheckCommand_PrintsSyntaxPosition(t *testing.T) {
	testDir := setupFiles(t, map[string]string{
		"proto/broken.proto": brokenProto,
	})

	output, err := captureStdout(t, func() error {
		return runCheck([]string{"-dir", filepath.Join(testDir, "proto")})
	})
	require.Error(t, err)
	assert.Contains(t, output, "broken.proto:2:")
}
