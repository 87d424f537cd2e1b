package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"vid2doc/internal/app/model"
)

// ToExcel writes the conversion history to an xlsx file.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Path"
	headerRow.AddCell().Value = "Conversion Time"
	headerRow.AddCell().Value = "Audio Duration (s)"
	headerRow.AddCell().Value = "Blocks"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Error Message"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.FileName
		row.AddCell().Value = t.FilePath
		row.AddCell().Value = t.ConversionTime.Format(time.RFC3339)
		row.AddCell().Value = fmt.Sprint(t.AudioDuration)
		row.AddCell().Value = fmt.Sprint(t.BlockCount)
		row.AddCell().Value = t.Text
		row.AddCell().Value = t.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
