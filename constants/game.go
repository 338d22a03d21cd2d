package constants

import "time"

// Board dimensions. Column 0, row 0, column BoardWidth and row BoardHeight are
// the wall ring; playable cells lie strictly between them.
const (
	BoardWidth  = 35
	BoardHeight = 21
)

// Game Loop Timing Constants
const (
	// FrameDuration is both the frame cadence and the input wait timeout
	FrameDuration = 200 * time.Millisecond
)

// Food Constants
const (
	// FoodCount is the conserved number of food items on the board
	FoodCount = 1
)

// Initial snake body, head first, heading up
var (
	InitialSnakeBody = [...][2]int{{10, 10}, {10, 9}, {10, 8}}
)
