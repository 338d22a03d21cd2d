// @focus: #sys { term }
// Package terminal holds the few raw terminal operations that sit outside the
// tcell screen lifecycle: detecting an interactive tty before the screen is
// opened, and restoring a usable terminal after a crash.
//
// Normal setup and teardown (raw mode, alternate screen, cursor hiding) are
// owned by the render package through tcell.
package terminal
