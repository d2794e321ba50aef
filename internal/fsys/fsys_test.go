package fsys

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_ReadDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))

	entries, err := OS{}.ReadDir(tmpDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.txt", "sub"}, names)

	t.Run("missing directory", func(t *testing.T) {
		_, err := OS{}.ReadDir(filepath.Join(tmpDir, "nope"))
		assert.Error(t, err)
	})
}

func TestOS_ReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	content := []byte("line one\r\nline two\x00\xff")

	require.NoError(t, OS{}.WriteFile(path, content))

	got, err := OS{}.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	t.Run("overwrites rather than appends", func(t *testing.T) {
		require.NoError(t, OS{}.WriteFile(path, []byte("short")))
		got, err := OS{}.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got))
	})
}

func TestOS_Stat(t *testing.T) {
	tmpDir := t.TempDir()
	info, err := OS{}.Stat(tmpDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOS_WriteFileError(t *testing.T) {
	orig := osWriteFile
	defer func() { osWriteFile = orig }()

	osWriteFile = func(string, []byte, os.FileMode) error {
		return errors.New("disk full")
	}
	err := OS{}.WriteFile("/tmp/whatever", []byte("x"))
	assert.EqualError(t, err, "disk full")
}
