/*
Package csi queries the controlling terminal for its size when standard output
is not itself a terminal
*/
package csi

import (
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// QueryTimeout is the default timeout for CSI queries
const QueryTimeout = 100 * time.Millisecond

// TTYPath is the controlling terminal device
var TTYPath = "/dev/tty"

// QueryWindowSize returns the controlling terminal's size in character cells.
// It asks the kernel first and falls back to CSI 18t when the ioctl fails.
// A reply arriving after QueryTimeout is not consumed and lands in the
// terminal's input once raw mode is restored.
func QueryWindowSize() (cols, rows int, ok bool) {
	tty, err := os.OpenFile(TTYPath, os.O_RDWR, 0)
	if err != nil {
		return 0, 0, false
	}
	defer tty.Close()

	if cols, rows, err := term.GetSize(int(tty.Fd())); err == nil && cols > 0 && rows > 0 {
		return cols, rows, true
	}

	if !QuerySupported() {
		return 0, 0, false
	}
	return queryTextAreaSizeInChars(tty)
}

// queryTextAreaSizeInChars sends CSI 18t and waits QueryTimeout for the reply
func queryTextAreaSizeInChars(tty *os.File) (cols, rows int, ok bool) {
	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		return 0, 0, false
	}
	defer term.Restore(int(tty.Fd()), oldState)

	if _, err := tty.WriteString("\x1b[18t"); err != nil {
		return 0, 0, false
	}

	responseChan := make(chan [2]int, 1)
	go func() {
		buf := make([]byte, 64)
		n, err := tty.Read(buf)
		if err != nil || n == 0 {
			responseChan <- [2]int{0, 0}
			return
		}
		c, r, _ := ParseWindowSizeResponse(string(buf[:n]))
		responseChan <- [2]int{c, r}
	}()

	select {
	case result := <-responseChan:
		return result[0], result[1], result[0] > 0 && result[1] > 0
	case <-time.After(QueryTimeout):
		return 0, 0, false
	}
}

// ParseWindowSizeResponse parses a CSI 18t reply of the form ESC[8;rows;colst
func ParseWindowSizeResponse(response string) (cols, rows int, ok bool) {
	start := strings.Index(response, "[8;")
	if start == -1 {
		return 0, 0, false
	}
	remaining := response[start+3:]

	end := strings.IndexByte(remaining, 't')
	if end == -1 {
		return 0, 0, false
	}

	parts := strings.Split(remaining[:end], ";")
	if len(parts) < 2 {
		return 0, 0, false
	}
	rows, err := strconv.Atoi(parts[0])
	if err != nil || rows <= 0 {
		return 0, 0, false
	}
	cols, err = strconv.Atoi(parts[1])
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

// QuerySupported checks if a terminal likely answers CSI queries
// This is a heuristic based on terminal type and environment
func QuerySupported() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "Apple_Terminal":
		// Apple Terminal often has CSI queries disabled for security
		return false
	case "vscode":
		return false
	}
	switch os.Getenv("TERM") {
	case "", "dumb":
		return false
	}
	return true
}
