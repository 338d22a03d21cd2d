package core

// Direction is a snake heading
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// opposites is the 180 degree relation used to reject reversals
var opposites = [...]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

var deltas = [...][2]int{
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

// Directions lists every valid heading
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return int(d) < len(opposites)
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// IsOpposite reports whether other reverses d
func (d Direction) IsOpposite(other Direction) bool {
	return opposites[d] == other
}

// Delta returns the unit step for d in screen coordinates (y grows downward)
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}
