package writer

import (
	"github.com/gomutex/godocx"

	"vid2doc/internal/app/blocks"
)

const (
	docxFont      = "Calibri"
	docxFontSize  = 11
	docxTitleSize = 16
)

// WriteDocx saves the blocks as a Word document: a bold title paragraph
// followed by one paragraph per block.
func WriteDocx(bs []blocks.Block, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	title := doc.AddParagraph("")
	title.AddText(DocumentTitle).Font(docxFont).Size(docxTitleSize).Bold(true)

	for _, b := range bs {
		p := doc.AddParagraph("")
		p.AddText(BlockLine(b)).Font(docxFont).Size(docxFontSize)
	}

	return doc.SaveTo(outputPath)
}
