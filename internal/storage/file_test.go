package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, lines)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestLoad_StripsTerminators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("a;b\r\n\nc;d\ne;f"), 0644))

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a;b", "", "c;d", "e;f"}, lines)
}

func TestAppend_PreservesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0644))

	require.NoError(t, Append(path, []string{"second", "third"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird\n", string(data))
}

func TestRewrite_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644))

	require.NoError(t, Rewrite(path, []string{"only"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only\n", string(data))

	require.NoError(t, Rewrite(path, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFile_RoundTrip(t *testing.T) {
	f := File{Path: filepath.Join(t.TempDir(), "data.txt")}

	require.NoError(t, f.Append([]string{"x;y"}))
	require.NoError(t, f.Append([]string{"z;w"}))
	lines, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"x;y", "z;w"}, lines)
}

func TestLoad_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { os.Chmod(dir, 0700) })

	_, err := Load(filepath.Join(dir, "data.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "data.txt")
	err := Append(path, []string{"row"})
	assert.ErrorIs(t, err, os.ErrNotExist)
	err = Rewrite(path, []string{"row"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_DoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	_, err := Read(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("a\n\nb"), 0644))
	lines, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, lines)
}
