package core

import "fmt"

// Position is a grid cell. Coordinates are signed so a step off the top or
// left edge yields -1 instead of wrapping.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position one unit in direction d
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
