package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"vid2doc/internal/app/model"
)

// VideoExtensions lists the file extensions treated as video input.
var VideoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".flv", ".wmv"}

// IsVideoFile reports whether path has a recognized video extension.
func IsVideoFile(path string) bool {
	return lo.Contains(VideoExtensions, strings.ToLower(filepath.Ext(path)))
}

// FindVideos walks root recursively and returns every video file found,
// sorted by path for a deterministic processing order.
func FindVideos(root string) ([]model.FileInfo, error) {
	var fileInfos []model.FileInfo

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsVideoFile(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: path,
			Name:     d.Name(),
			ModTime:  info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", root, err)
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].FullPath < fileInfos[j].FullPath
	})
	return fileInfos, nil
}

// ResolveInput turns the positional argument into the list of videos to
// process: a single video file, or every video below a directory.
func ResolveInput(path string) ([]model.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read input path %s: %w", path, err)
	}

	if stat.IsDir() {
		return FindVideos(path)
	}

	if !IsVideoFile(path) {
		return nil, fmt.Errorf("%s is not a recognized video file (expected one of %s)",
			path, strings.Join(VideoExtensions, ", "))
	}
	return []model.FileInfo{{
		FullPath: path,
		Name:     filepath.Base(path),
		ModTime:  stat.ModTime(),
	}}, nil
}

// DataDir returns the per-user directory holding the conversion history
// database, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".vid2doc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return dir, nil
}
