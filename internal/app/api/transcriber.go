package api

import "vid2doc/internal/app/model"

// Transcriber converts an audio file into an ordered sequence of timestamped
// text segments.
type Transcriber interface {
	Transcribe(audioFilePath string) ([]model.Segment, error)
}
