package model

import "time"

// FileInfo describes one discovered input video file.
type FileInfo struct {
	FullPath string
	Name     string
	ModTime  time.Time
}
