package ansipix

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
)

const (
	// CellChar is printed in every cell; only its background color shows
	CellChar = ' '
	// ResetSequence clears all SGR attributes at the end of each row
	ResetSequence = "\x1b[0m"
)

// Render writes img to w one cell per pixel, row-major, as a 24-bit
// background color escape followed by a space. Each row ends with
// ResetSequence and a newline.
func Render(w io.Writer, img *image.RGBA) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	writeRows(bw, img)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// RenderString returns what Render would write
func RenderString(img *image.RGBA) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, img); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeRows emits the cells; bufio.Writer keeps the first error and reports it on Flush
func writeRows(bw *bufio.Writer, img *image.RGBA) {
	bounds := img.Bounds()
	num := make([]byte, 0, 3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < bounds.Dx(); x++ {
			px := row[4*x : 4*x+3]
			bw.WriteString("\x1b[48;2;")
			bw.Write(strconv.AppendUint(num[:0], uint64(px[0]), 10))
			bw.WriteByte(';')
			bw.Write(strconv.AppendUint(num[:0], uint64(px[1]), 10))
			bw.WriteByte(';')
			bw.Write(strconv.AppendUint(num[:0], uint64(px[2]), 10))
			bw.WriteByte('m')
			bw.WriteByte(CellChar)
		}
		bw.WriteString(ResetSequence)
		bw.WriteByte('\n')
	}
}
