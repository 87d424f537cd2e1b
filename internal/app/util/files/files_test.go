package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"lecture.mp4", true},
		{"lecture.MP4", true},
		{"clip.avi", true},
		{"clip.mov", true},
		{"clip.mkv", true},
		{"clip.flv", true},
		{"clip.wmv", true},
		{"audio.mp3", false},
		{"notes.txt", false},
		{"noextension", false},
		{"dir/with.dots/video.webm", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsVideoFile(tt.path))
		})
	}
}

func TestFindVideos(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mp4"))
	touch(t, filepath.Join(dir, "a.mkv"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "deep", "c.wmv"))

	found, err := FindVideos(dir)
	require.NoError(t, err)

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"a.mkv", "b.mp4", "c.wmv"}, names)
}

func TestFindVideos_EmptyDirectory(t *testing.T) {
	found, err := FindVideos(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "talk.mp4")
	touch(t, video)
	touch(t, filepath.Join(dir, "other.avi"))

	t.Run("single file", func(t *testing.T) {
		found, err := ResolveInput(video)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "talk.mp4", found[0].Name)
		assert.Equal(t, video, found[0].FullPath)
	})

	t.Run("directory", func(t *testing.T) {
		found, err := ResolveInput(dir)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ResolveInput(filepath.Join(dir, "nope.mp4"))
		assert.Error(t, err)
	})

	t.Run("non-video file", func(t *testing.T) {
		notes := filepath.Join(dir, "notes.txt")
		touch(t, notes)
		_, err := ResolveInput(notes)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a recognized video file")
	})
}
