//go:build unix

package sizewise_test

import (
	"context"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/sizewise/internal/sizewise"
)

func TestScanFifoRoot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pipe")
	if err := syscall.Mkfifo(path, 0o644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	_, err := sizewise.Scan(context.Background(), sizewise.Options{Path: path}, nil)

	require.ErrorIs(t, err, sizewise.ErrInvalidTargetType)
}

func TestScanIgnoresFifoInTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "real.txt", 50)

	if err := syscall.Mkfifo(filepath.Join(dir, "pipe"), 0o644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	stats, err := sizewise.Scan(context.Background(), sizewise.Options{Path: dir}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.FileCount)
	assert.Equal(t, int64(50), stats.TotalBytes)
	assert.Equal(t, int64(0), stats.UnreadableEntries)
	assert.Equal(t, int64(0), stats.SkippedSymlinks)
}
