package audio

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// FindFFmpeg locates the ffmpeg binary on PATH.
func FindFFmpeg() (string, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found on PATH, install it to extract audio: %w", err)
	}
	return path, nil
}

// ExtractAudio converts the audio track of videoPath into a mono 16kHz WAV
// file at wavPath, the input format whisper expects.
func ExtractAudio(ffmpegPath, videoPath, wavPath string) error {
	cmd := exec.Command(ffmpegPath,
		"-y",
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		wavPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return nil
}

// GetAudioDuration returns the duration of an audio file in whole seconds,
// probed with ffprobe.
func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		filePath,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", filePath, err)
	}
	return ParseDuration(string(output))
}

// ParseDuration converts ffprobe's plain duration output to whole seconds.
func ParseDuration(output string) (int, error) {
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe duration output %q: %w", strings.TrimSpace(output), err)
	}
	return int(math.Round(durationFloat)), nil
}

// NewWorkspace creates a temporary directory for one file's audio artifacts.
// The caller removes it via the returned cleanup on every exit path.
func NewWorkspace() (string, func(), error) {
	dir, err := os.MkdirTemp("", "vid2doc_audio_")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp audio directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }
	return dir, cleanup, nil
}
