package ansipix

import (
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/blacktop/go-ansipix/pkg/csi"
	"golang.org/x/term"
)

const (
	// DefaultCols is the width used when no terminal size can be found
	DefaultCols = 80
	// DefaultRows is the height used when no terminal size can be found
	DefaultRows = 24
)

// GeometrySource records where a Geometry came from
type GeometrySource string

const (
	SourceIoctl   GeometrySource = "ioctl"   // output is a terminal
	SourceEnv     GeometrySource = "env"     // COLUMNS and LINES
	SourceTTY     GeometrySource = "tty"     // controlling terminal
	SourceDefault GeometrySource = "default" // DefaultCols x DefaultRows
)

// Geometry is a terminal size in character cells
type Geometry struct {
	Cols   int
	Rows   int
	Source GeometrySource
}

// Target returns the grid size a frame is scaled to: every column, and one row
// fewer than the terminal so the prompt does not scroll the top line away
func (g Geometry) Target() (width, height int) {
	return max(g.Cols, 1), max(g.Rows-1, 1)
}

// queryControllingTTY is swapped out in tests
var queryControllingTTY = csi.QueryWindowSize

// ProbeGeometry returns the size of the terminal w writes to. When w is not a
// terminal it tries COLUMNS/LINES, then the controlling terminal, then
// DefaultCols x DefaultRows. The returned dimensions are always positive.
func ProbeGeometry(w io.Writer) Geometry {
	g := probeGeometry(w)
	log.WithFields(log.Fields{
		"cols":   g.Cols,
		"rows":   g.Rows,
		"source": g.Source,
	}).Debug("Terminal geometry")
	return g
}

func probeGeometry(w io.Writer) Geometry {
	if f, ok := w.(*os.File); ok {
		if cols, rows, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && rows > 0 {
			return Geometry{Cols: cols, Rows: rows, Source: SourceIoctl}
		}
	}

	if cols, rows, ok := geometryFromEnv(); ok {
		return Geometry{Cols: cols, Rows: rows, Source: SourceEnv}
	}

	if cols, rows, ok := queryControllingTTY(); ok {
		return Geometry{Cols: cols, Rows: rows, Source: SourceTTY}
	}

	return Geometry{Cols: DefaultCols, Rows: DefaultRows, Source: SourceDefault}
}

func geometryFromEnv() (cols, rows int, ok bool) {
	cols, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	rows, err = strconv.Atoi(os.Getenv("LINES"))
	if err != nil || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}
