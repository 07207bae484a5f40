/*
Package ansipix paints images in the terminal with 24-bit ANSI background
colors, one space character per pixel.

Raster images are decoded with the standard library and golang.org/x/image
codecs (PNG, JPEG, GIF, BMP, TIFF, WebP). PDF documents are rasterized with
MuPDF: the first page only, at 300 DPI. The decoded picture is stretched to
the terminal, every column and one row fewer than its height, using area
interpolation.

Basic Usage:

	// Simple one-liner
	ansipix.PrintFile("image.png")

	// With configuration
	img, err := ansipix.Open("report.pdf")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Size(80, 40).Print()
	if err != nil {
	    log.Fatal(err)
	}

Output Format:

Each row is a run of

	ESC[48;2;R;G;Bm<space>

sequences, one per column, terminated by ESC[0m and a newline.

Terminal Size:

The size is read once from the output's terminal. When output is redirected,
COLUMNS and LINES are used if both are set, then the controlling terminal
(/dev/tty), then 80x24.
*/
package ansipix
