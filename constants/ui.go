package constants

// Cell glyphs
const (
	GlyphWallHorizontal = '_'
	GlyphWallVertical   = '|'
	GlyphFood           = '*'
	GlyphSnake          = '*'
)

// Replay prompt text
const (
	PromptPlayAgain = "Press any key to play again"
	PromptQuit      = "Press ESC to quit"
)
