package ansipix

import (
	"fmt"
	"image"

	"github.com/apex/log"
	"github.com/gen2brain/go-fitz"
)

const (
	// PDFDPI is the rasterization density used for PDF pages, both axes
	PDFDPI = 300
	// PDFPage is the only page index ever rendered
	PDFPage = 0
)

// RasterizePDF renders the first page of the PDF at path at PDFDPI
func RasterizePDF(path string) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFLoad, err)
	}
	defer doc.Close()

	return rasterizeFirstPage(doc)
}

// RasterizePDFBytes renders the first page of an in-memory PDF at PDFDPI
func RasterizePDFBytes(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFLoad, err)
	}
	defer doc.Close()

	return rasterizeFirstPage(doc)
}

func rasterizeFirstPage(doc *fitz.Document) (image.Image, error) {
	pages := doc.NumPage()
	if pages <= PDFPage {
		return nil, fmt.Errorf("%w: document has %d pages", ErrPDFPage, pages)
	}

	// full page, no crop or offset
	img, err := doc.ImageDPI(PDFPage, PDFDPI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFPage, err)
	}

	log.WithFields(log.Fields{
		"pages":  pages,
		"dpi":    PDFDPI,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("Rasterized PDF page")

	return img, nil
}
