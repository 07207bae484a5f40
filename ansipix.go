package ansipix

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"
)

// Image is a picture bound for the terminal with a fluent API for configuration
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	// Configuration
	width  int
	height int
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{source: img}
}

// Open creates a new Image from a file path. The file is decoded lazily, with
// the decoder its extension selects.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrImageDecode)
	}
	return &Image{path: path}, nil
}

// From creates a new Image from an io.Reader holding raster image or PDF data
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{reader: r}
}

// Width overrides the output width in character cells
func (i *Image) Width(w int) *Image {
	i.width = max(w, 0)
	return i
}

// Height overrides the output height in character cells
func (i *Image) Height(h int) *Image {
	i.height = max(h, 0)
	return i
}

// Size overrides both output dimensions in character cells
func (i *Image) Size(w, h int) *Image {
	return i.Width(w).Height(h)
}

// Frame decodes, normalizes and scales the image to the grid that would be
// rendered to w
func (i *Image) Frame(w io.Writer) (*image.RGBA, error) {
	img, err := i.loadImage()
	if err != nil {
		return nil, err
	}

	grid, err := Normalize(img)
	if err != nil {
		return nil, err
	}

	width, height := i.target(w)
	return Scale(grid, width, height)
}

// Fprint renders the image to w
func (i *Image) Fprint(w io.Writer) error {
	frame, err := i.Frame(w)
	if err != nil {
		return err
	}
	return Render(w, frame)
}

// Print outputs the image to stdout
func (i *Image) Print() error {
	return i.Fprint(os.Stdout)
}

// Render generates the escape sequence string for the image, sized for stdout
func (i *Image) Render() (string, error) {
	var sb strings.Builder
	frame, err := i.Frame(os.Stdout)
	if err != nil {
		return "", err
	}
	if err := Render(&sb, frame); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// target resolves the output grid size, probing the terminal for any
// dimension not set explicitly
func (i *Image) target(w io.Writer) (width, height int) {
	if i.width > 0 && i.height > 0 {
		return i.width, i.height
	}
	width, height = ProbeGeometry(w).Target()
	if i.width > 0 {
		width = i.width
	}
	if i.height > 0 {
		height = i.height
	}
	return width, height
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		img, err := Decode(i.path)
		if err != nil {
			return nil, err
		}
		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, err := decodeReader(i.reader)
		if err != nil {
			return nil, err
		}
		i.source = img
		return img, nil
	}

	return nil, fmt.Errorf("no image source configured")
}

// Convenience functions for quick rendering

// RenderFile renders an image file sized for stdout
func RenderFile(path string) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return img.Render()
}

// PrintFile prints an image file to stdout
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}
