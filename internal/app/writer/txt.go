package writer

import (
	"os"
	"strings"

	"vid2doc/internal/app/blocks"
)

// WriteTxt saves the blocks as a UTF-8 plain text file.
func WriteTxt(bs []blocks.Block, outputPath string) error {
	var sb strings.Builder
	sb.WriteString(DocumentTitle + "\n\n")
	for _, b := range bs {
		sb.WriteString(BlockLine(b) + "\n")
	}
	return os.WriteFile(outputPath, []byte(sb.String()), 0o644)
}
