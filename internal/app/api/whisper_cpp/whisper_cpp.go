package whisper_cpp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"vid2doc/internal/app/model"
)

// LocalTranscriber runs a local whisper.cpp binary and parses its JSON output
// into timestamped segments.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	device     string
}

// NewLocalTranscriber creates a new instance of LocalTranscriber. device is
// the resolved selector, "cpu" or "cuda".
func NewLocalTranscriber(binaryPath, modelPath, language, device string) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		device:     device,
	}
}

// ResolveModelPath maps a model name like "base" to a ggml model file under
// modelDir. A value that already points at a file is used as-is.
func ResolveModelPath(model, modelDir string) string {
	if strings.ContainsRune(model, os.PathSeparator) || strings.HasSuffix(model, ".bin") {
		return model
	}
	return filepath.Join(modelDir, fmt.Sprintf("ggml-%s.bin", model))
}

// Transcribe invokes the whisper.cpp binary on a 16kHz WAV file and returns
// the recognized segments in start-time order.
func (lt *LocalTranscriber) Transcribe(audioFilePath string) ([]model.Segment, error) {
	outputPrefix := strings.TrimSuffix(audioFilePath, filepath.Ext(audioFilePath))

	args := []string{
		"-m", lt.modelPath,
		"-l", lt.language,
		"-oj",
		"-f", audioFilePath,
		"-of", outputPrefix,
	}
	if lt.device == "cpu" {
		args = append(args, "-ng")
	}

	command := exec.Command(lt.binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("whisper.cpp execution error: %v, stderr: %s", err, stderr.String())
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read whisper.cpp output %s: %w", jsonPath, err)
	}
	defer os.Remove(jsonPath)

	return ParseOutput(data)
}

// whisperOutput maps the whisper.cpp -oj file layout. Offsets are
// milliseconds from the start of the audio.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// ParseOutput decodes a whisper.cpp JSON output file into segments.
func ParseOutput(data []byte) ([]model.Segment, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper.cpp JSON output: %w", err)
	}

	segments := make([]model.Segment, 0, len(out.Transcription))
	for _, seg := range out.Transcription {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		segments = append(segments, model.Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  text,
		})
	}
	return segments, nil
}
