package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	var de *DependencyError
	err := Check(filepath.Join(t.TempDir(), "no-such-binary"), FfmpegInstallURL)
	require.ErrorAs(t, err, &de)
	assert.Contains(t, err.Error(), FfmpegInstallURL)
}

func TestCheckAll(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit is not meaningful on windows")
	}

	bin := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	assert.Empty(t, CheckAll(bin, bin))
	assert.Len(t, CheckAll(bin, filepath.Join(t.TempDir(), "missing")), 1)
}
