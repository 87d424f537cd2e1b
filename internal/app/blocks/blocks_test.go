package blocks

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vid2doc/internal/app/model"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name        string
		segments    []model.Segment
		blockLength int
		expected    []Block
	}{
		{
			name:        "empty input yields empty output",
			segments:    nil,
			blockLength: 60,
			expected:    nil,
		},
		{
			name: "segments merged into one block",
			segments: []model.Segment{
				{Start: 0, End: 5, Text: "Hello"},
				{Start: 10, End: 20, Text: "world"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "00:00–01:00", Text: "Hello world"},
			},
		},
		{
			name: "segments split across two blocks",
			segments: []model.Segment{
				{Start: 0, End: 5, Text: "Hello"},
				{Start: 10, End: 20, Text: "world"},
				{Start: 65, End: 70, Text: "foo"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "00:00–01:00", Text: "Hello world"},
				{Label: "01:00–02:00", Text: "foo"},
			},
		},
		{
			name: "start exactly on boundary belongs to the next block",
			segments: []model.Segment{
				{Start: 0, End: 30, Text: "first"},
				{Start: 60, End: 65, Text: "second"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "00:00–01:00", Text: "first"},
				{Label: "01:00–02:00", Text: "second"},
			},
		},
		{
			name: "gap window emits no placeholder block",
			segments: []model.Segment{
				{Start: 5, End: 10, Text: "start"},
				{Start: 130, End: 140, Text: "end"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "00:00–01:00", Text: "start"},
				{Label: "02:00–03:00", Text: "end"},
			},
		},
		{
			name: "first segment not in window zero",
			segments: []model.Segment{
				{Start: 75, End: 80, Text: "late start"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "01:00–02:00", Text: "late start"},
			},
		},
		{
			name: "end crossing a boundary does not split the segment",
			segments: []model.Segment{
				{Start: 55, End: 72, Text: "crosses"},
				{Start: 75, End: 80, Text: "next"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "00:00–01:00", Text: "crosses"},
				{Label: "01:00–02:00", Text: "next"},
			},
		},
		{
			name: "short block length",
			segments: []model.Segment{
				{Start: 0, End: 2, Text: "a"},
				{Start: 4.5, End: 6, Text: "b"},
				{Start: 5, End: 9, Text: "c"},
				{Start: 10, End: 12, Text: "d"},
			},
			blockLength: 5,
			expected: []Block{
				{Label: "00:00–00:05", Text: "a"},
				{Label: "00:05–00:10", Text: "b c"},
				{Label: "00:10–00:15", Text: "d"},
			},
		},
		{
			name: "segment text is trimmed before joining",
			segments: []model.Segment{
				{Start: 0, End: 3, Text: " Hello "},
				{Start: 4, End: 6, Text: " world"},
			},
			blockLength: 60,
			expected: []Block{
				{Label: "00:00–01:00", Text: "Hello world"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.segments, tt.blockLength)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 5, Text: "one"},
		{Start: 59.9, End: 61, Text: "two"},
		{Start: 60, End: 63, Text: "three"},
		{Start: 180, End: 185, Text: "four"},
	}

	first := Aggregate(segments, 60)
	second := Aggregate(segments, 60)
	assert.Equal(t, first, second)
}

func TestAggregate_EverySegmentInExactlyOneBlock(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 2, Text: "s0"},
		{Start: 29, End: 31, Text: "s1"},
		{Start: 30, End: 33, Text: "s2"},
		{Start: 61, End: 62, Text: "s3"},
		{Start: 89.5, End: 92, Text: "s4"},
		{Start: 150, End: 151, Text: "s5"},
	}

	for _, blockLength := range []int{1, 7, 30, 60, 600} {
		t.Run(fmt.Sprintf("block_length_%d", blockLength), func(t *testing.T) {
			got := Aggregate(segments, blockLength)

			// Rebuild the expected contents per window index independently
			// and compare against the emitted blocks in order.
			byIndex := map[int][]string{}
			var order []int
			for _, seg := range segments {
				idx := int(seg.Start) / blockLength
				if _, ok := byIndex[idx]; !ok {
					order = append(order, idx)
				}
				byIndex[idx] = append(byIndex[idx], seg.Text)
			}

			require.Len(t, got, len(order))
			for i, idx := range order {
				assert.Equal(t, WindowLabel(idx, blockLength), got[i].Label)
				total := 0
				for _, txt := range byIndex[idx] {
					total += len(txt)
				}
				// Joined text keeps every covered segment, in order.
				assert.Len(t, got[i].Text, total+len(byIndex[idx])-1)
			}
		})
	}
}

func TestAggregate_NoDuplicateOrOverlappingLabels(t *testing.T) {
	segments := []model.Segment{
		{Start: 0, End: 1, Text: "a"},
		{Start: 61, End: 62, Text: "b"},
		{Start: 62, End: 63, Text: "c"},
		{Start: 200, End: 201, Text: "d"},
	}

	got := Aggregate(segments, 60)
	seen := map[string]bool{}
	for _, b := range got {
		assert.False(t, seen[b.Label], "duplicate label %s", b.Label)
		seen[b.Label] = true
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{125, "02:05"},
		{3600, "60:00"},
		{3905, "65:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTimestamp(tt.seconds))
	}
}

func TestWindowLabel(t *testing.T) {
	assert.Equal(t, "00:00–01:00", WindowLabel(0, 60))
	assert.Equal(t, "01:00–02:00", WindowLabel(1, 60))
	assert.Equal(t, "01:30–01:45", WindowLabel(6, 15))
}
