package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := New("test").command()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestCommandUnknownFlag(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestCommandHelp(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "sizewise [path]")
	assert.Contains(t, out, "storage")
	assert.Contains(t, out, "workers")
}

func TestCommandVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "test\n", out)
}

func TestCommandInvalidMode(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--mode", "bogus", t.TempDir())

	require.ErrorContains(t, err, `invalid mode "bogus"`)
}

func TestCommandInvalidOutput(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--output", "xml", t.TempDir())

	require.ErrorContains(t, err, `invalid output format "xml"`)
}

func TestCommandTooManyArgs(t *testing.T) {
	t.Parallel()

	_, err := execute(t, t.TempDir(), t.TempDir())

	require.ErrorContains(t, err, "at most 1")
}

func TestCommandScanJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), make([]byte, 300), 0o644))

	out, err := execute(t, "--output", "json", dir)

	require.NoError(t, err)
	assert.Contains(t, out, `"file_count": 2`)
	assert.Contains(t, out, `"mode": "storage"`)
	assert.Contains(t, out, `"total_bytes": 400`)
}

func TestCommandWorkersMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 100), 0o644))

	out, err := execute(t, "--mode", "workers", "--output", "json", dir)

	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "workers"`)
	assert.Contains(t, out, `"nodes": 1`)
}

func TestCommandDoubleDashPath(t *testing.T) {
	dir := t.TempDir()
	weird := filepath.Join(dir, "--weird")
	require.NoError(t, os.Mkdir(weird, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(weird, "data.bin"), make([]byte, 64), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := execute(t, "--output", "json", "--", "--weird")

	require.NoError(t, err)
	assert.Contains(t, out, `"file_count": 1`)
	assert.Contains(t, out, `"target": "--weird"`)
}

func TestCommandMissingTarget(t *testing.T) {
	t.Parallel()

	_, err := execute(t, filepath.Join(t.TempDir(), "nope"))

	require.ErrorContains(t, err, "target not found")
}
