package model

import "time"

// Transcription is one row of the local conversion history.
type Transcription struct {
	ID             int
	FileName       string
	FilePath       string
	AudioDuration  int
	BlockCount     int
	Text           string
	ConversionTime time.Time
	HasError       int
	ErrorMessage   string
}
