package blocks

import (
	"fmt"
	"strings"

	"vid2doc/internal/app/model"
)

// Block is a merged group of segments whose start times fall into one
// fixed-length time window. Label is the nominal window range, not the
// actual coverage of the last segment.
type Block struct {
	Label string
	Text  string
}

// Aggregate buckets time-ordered segments into blocks of blockLength seconds.
// A segment belongs to the window floor(start/blockLength); a start landing
// exactly on a boundary opens the next window. Windows with no segments are
// skipped, so indices in the output need not be contiguous. Empty input yields
// nil. blockLength must be positive, the caller validates it before calling.
func Aggregate(segments []model.Segment, blockLength int) []Block {
	if len(segments) == 0 {
		return nil
	}

	var out []Block
	index := windowIndex(segments[0].Start, blockLength)
	var texts []string

	for _, seg := range segments {
		target := windowIndex(seg.Start, blockLength)
		if target != index {
			if len(texts) > 0 {
				out = append(out, newBlock(index, blockLength, texts))
			}
			index = target
			texts = nil
		}
		texts = append(texts, strings.TrimSpace(seg.Text))
	}

	if len(texts) > 0 {
		out = append(out, newBlock(index, blockLength, texts))
	}
	return out
}

func windowIndex(start float64, blockLength int) int {
	// start is never negative, so integer truncation equals floor.
	return int(start) / blockLength
}

func newBlock(index, blockLength int, texts []string) Block {
	return Block{
		Label: WindowLabel(index, blockLength),
		Text:  strings.Join(texts, " "),
	}
}

// WindowLabel renders the nominal range of window index as MM:SS–MM:SS.
// Minutes run past 59 for long inputs rather than rolling into hours.
func WindowLabel(index, blockLength int) string {
	start := index * blockLength
	return fmt.Sprintf("%s–%s", FormatTimestamp(start), FormatTimestamp(start+blockLength))
}

// FormatTimestamp renders a whole number of seconds as MM:SS.
func FormatTimestamp(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
