package ansipix

import (
	"fmt"
	"image"

	"github.com/apex/log"
	xdraw "golang.org/x/image/draw"
)

// axisKernel returns the resampling kernel for one axis going from src to dst
// pixels. Shrinking weights every source pixel by the share of it that falls
// inside the destination pixel's footprint. Enlarging is bilinear.
func axisKernel(src, dst int) *xdraw.Kernel {
	if dst >= src {
		return xdraw.BiLinear
	}

	// x/image/draw hands At the source offset divided by s, so the footprint
	// is [t-half, t+half] against a source pixel spanning [-0.5, 0.5]
	s := float64(src) / float64(dst)
	half := 0.5 / s
	return &xdraw.Kernel{
		Support: 0.5 + half,
		At: func(t float64) float64 {
			return max(0, min(t+half, 0.5)-max(t-half, -0.5)) * s
		},
	}
}

// Scale resizes img to exactly width x height using area interpolation. The
// result is a new grid; img is not modified.
func Scale(img image.Image, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// Skip resampling if already correct size
	if bounds.Dx() == width && bounds.Dy() == height {
		xdraw.Copy(dst, image.Point{}, img, bounds, xdraw.Src, nil)
		return dst, nil
	}

	log.WithFields(log.Fields{
		"from": fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"to":   fmt.Sprintf("%dx%d", width, height),
	}).Debug("Scaling")

	// one axis per pass, each with its own kernel; the 16-bit intermediate
	// keeps the horizontal pass from rounding to 8 bits early
	var src image.Image = img
	sr := bounds
	if bounds.Dx() != width {
		mid := image.NewRGBA64(image.Rect(0, 0, width, bounds.Dy()))
		axisKernel(bounds.Dx(), width).Scale(mid, mid.Bounds(), img, bounds, xdraw.Src, nil)
		src, sr = mid, mid.Bounds()
	}

	if sr.Dy() == height {
		xdraw.Copy(dst, image.Point{}, src, sr, xdraw.Src, nil)
	} else {
		axisKernel(sr.Dy(), height).Scale(dst, dst.Bounds(), src, sr, xdraw.Src, nil)
	}

	return dst, nil
}
