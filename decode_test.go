package ansipix

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path    string
		wantExt string
		want    Kind
	}{
		{path: "file.pdf", wantExt: "pdf", want: KindPDF},
		{path: "file.PDF", wantExt: "pdf", want: KindPDF},
		{path: "file.Pdf", wantExt: "pdf", want: KindPDF},
		{path: "/tmp/some.dir/report.final.pdf", wantExt: "pdf", want: KindPDF},
		{path: "file.png", wantExt: "png", want: KindRaster},
		{path: "file.jpg", wantExt: "jpg", want: KindRaster},
		{path: "file.JPEG", wantExt: "jpeg", want: KindRaster},
		{path: "file", wantExt: "", want: KindRaster},
		{path: "file.", wantExt: "", want: KindRaster},
		{path: "pdf", wantExt: "", want: KindRaster},
		{path: "file.pdf.png", wantExt: "png", want: KindRaster},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.wantExt, Extension(tt.path))
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pdf", KindPDF.String())
	assert.Equal(t, "raster", KindRaster.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestDecodeRaster(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "gradient.png", createTestImage(16, 9))

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

func TestDecodeRasterIgnoresExtension(t *testing.T) {
	// codecs sniff the header, so a PNG without an extension still decodes
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "noext", createTestImage(4, 4))

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not an image"), 0o644))

	empty := filepath.Join(dir, "empty.jpg")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing raster", path: filepath.Join(dir, "missing.png"), want: ErrImageDecode},
		{name: "garbage raster", path: garbage, want: ErrImageDecode},
		{name: "empty raster", path: empty, want: ErrImageDecode},
		{name: "missing pdf", path: filepath.Join(dir, "missing.pdf"), want: ErrPDFLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.path)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, img)
		})
	}
}

func TestDecodeReader(t *testing.T) {
	t.Run("raster stream", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, createSolidImage(3, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})))

		img, err := decodeReader(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	})

	t.Run("broken pdf stream", func(t *testing.T) {
		img, err := decodeReader(bytes.NewReader([]byte("%PDF-1.4\nthis is not a pdf")))
		assertPDFFailure(t, err)
		assert.Nil(t, img)
	})

	t.Run("short stream", func(t *testing.T) {
		img, err := decodeReader(bytes.NewReader([]byte("%P")))
		assert.ErrorIs(t, err, ErrImageDecode)
		assert.Nil(t, img)
	})
}
