package ansipix

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func createTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// Fill with a simple pattern for visual verification
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: uint8((x + y) % 255),
				A: 255,
			})
		}
	}
	return img
}

func createSolidImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, img))
	return path
}

// buildTestPDF returns a PDF with one 72x72pt page per fill color, each page
// painted edge to edge with that color ("r g b" operands of the rg operator)
func buildTestPDF(fills ...string) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(fills))
	for i := range fills {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(fills)))

	for i, fill := range fills {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 72 72] /Contents %d 0 R >>", 4+2*i))
		content := fill + " rg 0 0 72 72 re f"
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

func writeTestPDF(t *testing.T, dir, name string, fills ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buildTestPDF(fills...), 0o644))
	return path
}

// parseCells splits rendered output into rows of cell colors
func parseCells(t *testing.T, out string) [][]color.RGBA {
	t.Helper()

	var rows [][]color.RGBA
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		require.True(t, strings.HasSuffix(line, ResetSequence), "row must end with reset: %q", line)
		line = strings.TrimSuffix(line, ResetSequence)

		var row []color.RGBA
		for _, cell := range strings.Split(line, "\x1b[48;2;")[1:] {
			var c color.RGBA
			_, err := fmt.Sscanf(cell, "%d;%d;%dm ", &c.R, &c.G, &c.B)
			require.NoError(t, err, "cell %q", cell)
			require.True(t, strings.HasSuffix(cell, "m "), "cell %q", cell)
			c.A = 0xff
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	return rows
}
