package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_Layout(t *testing.T) {
	root := t.TempDir()
	s := NewFileStorage(root)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }

	path := s.DrawingPath("abc", "gasket.dxf")
	assert.Equal(t, filepath.Join(root, "2026-10-15", "abc", "gasket.dxf"), path)

	require.NoError(t, s.EnsureDir("abc"))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStorage_SanitizesFileName(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	path := s.DrawingPath("abc", "../../etc/passwd")
	assert.Equal(t, "passwd", filepath.Base(path))
	assert.True(t, s.Contains(path))
}

func TestFileStorage_Contains(t *testing.T) {
	root := t.TempDir()
	s := NewFileStorage(root)

	assert.True(t, s.Contains(filepath.Join(root, "x", "y.dxf")))
	assert.False(t, s.Contains(filepath.Join(root, "..", "y.dxf")))
	assert.False(t, s.Contains("/etc/passwd"))
}
