package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Prompt shows the replay menu and waits for a key. Returns true to play
// again, false on the quit key or when the screen is gone. last is the
// summary of the previous session, nil before the first game.
func (t *Terminal) Prompt(last *engine.Result) bool {
	draw := func() { t.drawPrompt(last) }
	draw()

	ev, ok := t.WaitKey(draw)
	if !ok {
		return false
	}
	return !IsQuitKey(ev)
}

func (t *Terminal) drawPrompt(last *engine.Result) {
	t.screen.Clear()

	row := 1
	if last != nil {
		t.drawText(0, row, Summary(*last), StylePromptSummary)
		row += 2
	}
	t.drawText(0, row, constants.PromptPlayAgain, StylePromptPlay)
	t.drawText(0, row+1, constants.PromptQuit, StylePromptQuit)

	t.screen.Show()
}

// Summary formats a finished session for the replay prompt
func Summary(r engine.Result) string {
	verb := "Game over"
	if r.Outcome == engine.OutcomeQuit {
		verb = "Quit"
	}
	return fmt.Sprintf("%s: length %d, ate %d in %s", verb, r.Length, r.Eaten, r.Duration.Round(time.Second))
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
