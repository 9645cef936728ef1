package gallery

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	intImage "github.com/gogpu/colorbook/internal/image"
)

// pageImage is the name the drawing is registered under inside the PDF.
const pageImage = "drawing"

// writePDF writes img on a single A4 portrait page, scaled to fit inside
// the page margins and centered.
func writePDF(w io.Writer, img image.Image, title string) error {
	png, err := intImage.EncodeToBytes(img, intImage.FormatPNG)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("colorbook", true)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pageImage, opts, bytes.NewReader(png))

	x, y, pw, ph := fitPage(pdf, img.Bounds().Dx(), img.Bounds().Dy())
	pdf.ImageOptions(pageImage, x, y, pw, ph, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("gallery: write PDF: %w", err)
	}
	return nil
}

// fitPage returns the position and size, in page units, of a w x h image
// scaled uniformly into the printable area and centered on it.
func fitPage(pdf *gofpdf.Fpdf, w, h int) (x, y, pw, ph float64) {
	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()
	aw := pageW - left - right
	ah := pageH - top - bottom

	scale := math.Min(aw/float64(w), ah/float64(h))
	pw = float64(w) * scale
	ph = float64(h) * scale
	x = left + (aw-pw)/2
	y = top + (ah-ph)/2
	return x, y, pw, ph
}
