package model

// Segment is one timestamped unit of recognized speech, as produced by a
// transcription engine. Start and End are offsets into the audio in seconds.
// Engines emit segments in non-decreasing Start order.
type Segment struct {
	Start float64
	End   float64
	Text  string
}
