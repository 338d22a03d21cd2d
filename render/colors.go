package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/engine"
)

// Cell styles by semantic class
var (
	StyleWall  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleFood  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleSnake = tcell.StyleDefault
)

// Prompt styles
var (
	StylePromptPlay    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StylePromptQuit    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StylePromptSummary = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// tcellStyle maps an engine style to its terminal style
func tcellStyle(s engine.Style) tcell.Style {
	switch s {
	case engine.StyleWall:
		return StyleWall
	case engine.StyleFood:
		return StyleFood
	case engine.StyleSnake:
		return StyleSnake
	default:
		return tcell.StyleDefault
	}
}
