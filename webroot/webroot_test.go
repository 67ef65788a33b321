package webroot

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	root, err := New(dir)
	require.NoError(t, err)
	require.Equal(t, dir, root.Dir())
	require.True(t, filepath.IsAbs(root.Dir()))
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected an error for a nonexistent root")
	}
}

func TestNewNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a-file")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0644))

	_, err := New(path)
	if err == nil {
		t.Fatal("expected an error for a non-directory root")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	content := []byte("<html>hello</html>")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "index.html"), content, 0644))

	root, err := New(dir)
	require.NoError(t, err)

	f, err := root.Open("/sub/index.html")
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestOpenMissingFile(t *testing.T) {
	root, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = root.Open("/nope.txt")
	if !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
