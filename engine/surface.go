package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Style is the semantic class of a drawn cell; surfaces map it to colors
type Style uint8

const (
	StyleDefault Style = iota
	StyleWall
	StyleFood
	StyleSnake
)

// InputKind classifies a polled input event
type InputKind uint8

const (
	InputNone InputKind = iota // Key with no gameplay meaning
	InputQuit
	InputTurn
)

// Input is a decoded key event
type Input struct {
	Kind InputKind
	Dir  core.Direction // Valid when Kind == InputTurn
}

// Surface is the rendering and input collaborator driven by a Session.
// Implementations are expected to succeed; I/O failure is fatal at the process level.
type Surface interface {
	// Clear erases all drawn content
	Clear()
	// DrawCell renders one glyph at one grid coordinate
	DrawCell(p core.Position, glyph rune, style Style)
	// Show presents everything drawn since the last Show
	Show()
	// PollInput blocks up to timeout and reports the next input if one arrived
	PollInput(timeout time.Duration) (Input, bool)
}

// Sounds receives gameplay feedback. Calls must not block the frame.
type Sounds interface {
	PlayEat()
	PlayDeath()
}

type silentSounds struct{}

func (silentSounds) PlayEat()   {}
func (silentSounds) PlayDeath() {}
