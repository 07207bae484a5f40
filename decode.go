package ansipix

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Kind is the decoder family selected for an input file
type Kind int

const (
	// KindRaster is any file handed to the registered image codecs
	KindRaster Kind = iota
	// KindPDF is a PDF document rasterized through MuPDF
	KindPDF
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindRaster:
		return "raster"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// pdfMagic prefixes every PDF file
var pdfMagic = []byte("%PDF-")

// Extension returns the lowercased text after the last "." in path, or "" when
// path contains no "."
func Extension(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}

// Classify picks the decoder for path from its extension
func Classify(path string) Kind {
	if Extension(path) == "pdf" {
		return KindPDF
	}
	return KindRaster
}

// Decode reads the file at path with the decoder its extension selects
func Decode(path string) (image.Image, error) {
	kind := Classify(path)
	log.WithFields(log.Fields{
		"path": path,
		"kind": kind,
	}).Debug("Decoding")

	if kind == KindPDF {
		return RasterizePDF(path)
	}
	return decodeRasterFile(path)
}

// decodeRasterFile opens and decodes a raster image file
func decodeRasterFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrImageDecode, err)
	}
	defer file.Close()

	return decodeRaster(file)
}

// decodeRaster decodes r with whichever registered codec matches its header
func decodeRaster(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", ErrImageDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, ErrEmptyImage)
	}

	log.WithFields(log.Fields{
		"format": format,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	}).Debug("Decoded raster image")

	return img, nil
}

// decodeReader sniffs r and routes PDF streams to MuPDF, everything else to
// the raster codecs
func decodeReader(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(pdfMagic))
	if err == nil && bytes.Equal(head, pdfMagic) {
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPDFLoad, err)
		}
		return RasterizePDFBytes(data)
	}
	return decodeRaster(br)
}
