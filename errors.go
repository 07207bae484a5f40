package ansipix

import "errors"

var (
	// ErrUsage is returned when the command is not given exactly one path
	ErrUsage = errors.New("usage error")
	// ErrPDFLoad is returned when a PDF document cannot be opened
	ErrPDFLoad = errors.New("failed to load PDF document")
	// ErrPDFPage is returned when the first page of a PDF cannot be rasterized
	ErrPDFPage = errors.New("failed to load the first page")
	// ErrImageDecode is returned when a raster image cannot be read or decoded
	ErrImageDecode = errors.New("unable to load image")
	// ErrEmptyImage is returned for grids with no pixels or no backing buffer
	ErrEmptyImage = errors.New("empty image")
	// ErrInvalidSize is returned when a scale target is not positive
	ErrInvalidSize = errors.New("invalid target size")
	// ErrWrite is returned when the rendered output cannot be written
	ErrWrite = errors.New("failed to write output")
)
