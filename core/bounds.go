package core

// Bounds is the board size. Row 0, column 0 and everything at or past
// Width/Height are wall.
type Bounds struct {
	Width, Height int
}

// IsWall reports whether p lies on or beyond the wall ring
func (b Bounds) IsWall(p Position) bool {
	return p.X <= 0 || p.Y <= 0 || p.X >= b.Width || p.Y >= b.Height
}

// Area is a rectangular region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether p falls inside the area
func (a Area) Contains(p Position) bool {
	return p.X >= a.X && p.Y >= a.Y && p.X < a.X+a.Width && p.Y < a.Y+a.Height
}

// SpawnArea is the region food is drawn from: x in [1, Width-2), y in [1, Height-2).
// It stays clear of the wall ring and the column/row just inside the far walls.
func (b Bounds) SpawnArea() Area {
	return Area{X: 1, Y: 1, Width: max(b.Width-3, 1), Height: max(b.Height-3, 1)}
}
