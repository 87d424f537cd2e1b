package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"vid2doc/internal/app/model"
)

func TestToExcel(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	transcriptions := []model.Transcription{
		{
			ID:             1,
			FileName:       "talk.mp4",
			FilePath:       "/videos/talk.mp4",
			AudioDuration:  125,
			BlockCount:     3,
			Text:           "[00:00–01:00] Hello world",
			ConversionTime: now,
		},
		{
			ID:             2,
			FileName:       "bad.mp4",
			FilePath:       "/videos/bad.mp4",
			ConversionTime: now,
			HasError:       1,
			ErrorMessage:   "ffmpeg error",
		},
	}

	outputPath := filepath.Join(t.TempDir(), "history.xlsx")
	require.NoError(t, ToExcel(transcriptions, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Transcriptions", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "talk.mp4", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "3", sheet.Rows[1].Cells[5].Value)
	assert.Equal(t, "ffmpeg error", sheet.Rows[2].Cells[7].Value)
}

func TestToExcel_EmptyHistory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
}
