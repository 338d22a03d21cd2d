package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the dimensions of the terminal attached to f
func Size(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}

// EmergencyReset restores terminal to a sane state without depending on the
// screen that may have panicked. Safe to call from a recover handler.
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
