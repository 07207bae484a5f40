package ansipix

import (
	"image"
	"image/color"
)

// Normalize converts a decoded image into an opaque RGBA grid anchored at the
// origin. Alpha is discarded, not composited: MuPDF hands back premultiplied
// RGBA so its color bytes are copied as-is, and straight-alpha sources keep
// their unpremultiplied color.
func Normalize(img image.Image) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	switch src := img.(type) {
	case *image.RGBA:
		if !copyOpaque(dst, src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), w, h) {
			return nil, ErrEmptyImage
		}
	case *image.NRGBA:
		if !copyOpaque(dst, src.Pix, src.Stride, src.PixOffset(bounds.Min.X, bounds.Min.Y), w, h) {
			return nil, ErrEmptyImage
		}
	default:
		for y := range h {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
			for x := range w {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				row[4*x+0] = c.R
				row[4*x+1] = c.G
				row[4*x+2] = c.B
				row[4*x+3] = 0xff
			}
		}
	}

	return dst, nil
}

// copyOpaque copies w*h 4-byte RGBA-ordered pixels from pix into dst and forces
// every alpha byte to 0xff. It reports false when pix is too short.
func copyOpaque(dst *image.RGBA, pix []byte, stride, offset, w, h int) bool {
	if pix == nil || offset < 0 || offset+(h-1)*stride+4*w > len(pix) {
		return false
	}
	for y := range h {
		src := pix[offset+y*stride : offset+y*stride+4*w]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		copy(row, src)
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
	return true
}
