package writer

import (
	"os"

	"github.com/go-pdf/fpdf"

	"vid2doc/internal/app/blocks"
)

// PdfFontEnv optionally points at a TTF file registered for PDF output.
// Without it the built-in Helvetica is used, which covers Latin scripts
// only; transcripts in other scripts need a Unicode font.
const PdfFontEnv = "VID2DOC_PDF_FONT"

// WritePdf saves the blocks as a PDF: a bold title followed by one
// paragraph per block.
func WritePdf(bs []blocks.Block, outputPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)

	fontName := "Helvetica"
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	if fontPath := os.Getenv(PdfFontEnv); fontPath != "" {
		pdf.AddUTF8Font("custom", "", fontPath)
		pdf.AddUTF8Font("custom", "B", fontPath)
		fontName = "custom"
		translate = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(fontName, "B", 16)
	pdf.MultiCell(0, 9, translate(DocumentTitle), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(fontName, "", 12)
	for _, b := range bs {
		pdf.MultiCell(0, 6, translate(BlockLine(b)), "", "L", false)
		pdf.Ln(3)
	}

	return pdf.OutputFileAndClose(outputPath)
}
