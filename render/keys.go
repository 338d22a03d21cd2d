package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// runeDirections maps vi (hjkl) and wasd keys to headings
var runeDirections = map[rune]core.Direction{
	'k': core.DirUp,
	'j': core.DirDown,
	'h': core.DirLeft,
	'l': core.DirRight,
	'w': core.DirUp,
	's': core.DirDown,
	'a': core.DirLeft,
	'd': core.DirRight,
}

var keyDirections = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.DirUp,
	tcell.KeyDown:  core.DirDown,
	tcell.KeyLeft:  core.DirLeft,
	tcell.KeyRight: core.DirRight,
}

// IsQuitKey reports whether ev ends the game
func IsQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// MapKey decodes a key event into gameplay input
func MapKey(ev *tcell.EventKey) engine.Input {
	if IsQuitKey(ev) {
		return engine.Input{Kind: engine.InputQuit}
	}

	if dir, ok := keyDirections[ev.Key()]; ok {
		return engine.Input{Kind: engine.InputTurn, Dir: dir}
	}

	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		if dir, ok := runeDirections[ev.Rune()]; ok {
			return engine.Input{Kind: engine.InputTurn, Dir: dir}
		}
	}

	return engine.Input{Kind: engine.InputNone}
}
