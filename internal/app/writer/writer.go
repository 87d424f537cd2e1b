// Package writer serializes aggregated transcript blocks into document
// files placed next to the source video.
package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"vid2doc/internal/app/blocks"
	"vid2doc/internal/app/config"
)

// DocumentTitle is the heading written at the top of every output document.
const DocumentTitle = "Video Transcription"

// OutputPath derives the output file path for a format: adjacent to the
// video, same base name, new extension.
func OutputPath(videoPath, format string) string {
	return strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "." + format
}

// BlockLine renders one block as a document paragraph.
func BlockLine(b blocks.Block) string {
	return fmt.Sprintf("[%s] %s", b.Label, b.Text)
}

// Write serializes the blocks once per requested format and returns the
// paths written. It stops at the first failing format.
func Write(bs []blocks.Block, videoPath string, formats []string) ([]string, error) {
	written := make([]string, 0, len(formats))
	for _, format := range formats {
		outputPath := OutputPath(videoPath, format)

		var err error
		switch format {
		case config.FormatDocx:
			err = WriteDocx(bs, outputPath)
		case config.FormatTxt:
			err = WriteTxt(bs, outputPath)
		case config.FormatPdf:
			err = WritePdf(bs, outputPath)
		default:
			err = fmt.Errorf("unknown output format %q", format)
		}
		if err != nil {
			return written, fmt.Errorf("failed to write %s output: %w", format, err)
		}
		written = append(written, outputPath)
	}
	return written, nil
}
