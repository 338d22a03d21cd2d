package engine

import (
	"slices"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Snake is the player entity: a head-first segment list, a heading and a
// one-way alive flag
type Snake struct {
	segments []core.Position // [0] is the head, last is the tail
	heading  core.Direction
	alive    bool
	bounds   core.Bounds
}

// NewSnake creates the starting snake for a session
func NewSnake(bounds core.Bounds) *Snake {
	body := make([]core.Position, 0, len(constants.InitialSnakeBody))
	for _, seg := range constants.InitialSnakeBody {
		body = append(body, core.Position{X: seg[0], Y: seg[1]})
	}
	return NewSnakeWith(body, core.DirUp, bounds)
}

// NewSnakeWith creates a snake with an explicit body, head first.
// Panics on an empty body.
func NewSnakeWith(segments []core.Position, heading core.Direction, bounds core.Bounds) *Snake {
	if len(segments) == 0 {
		panic("engine: snake needs at least one segment")
	}
	return &Snake{
		segments: slices.Clone(segments),
		heading:  heading,
		alive:    true,
		bounds:   bounds,
	}
}

// Advance moves the snake one cell along its heading. The new head is
// prepended and the tail dropped even when the move lands on a wall, in
// which case the snake dies. The body is not checked for self-intersection.
func (s *Snake) Advance() {
	head := s.segments[0].Step(s.heading)

	if s.bounds.IsWall(head) {
		s.alive = false
	}

	// Shift body back one slot and write the new head in place
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = head
}

// Turn sets the heading unless dir reverses it. Reports whether the heading changed.
func (s *Snake) Turn(dir core.Direction) bool {
	if !dir.Valid() || s.heading.IsOpposite(dir) || s.heading == dir {
		return false
	}
	s.heading = dir
	return true
}

// Grow appends a segment one cell behind the tail, opposite the heading
func (s *Snake) Grow() {
	tail := s.segments[len(s.segments)-1]
	s.segments = append(s.segments, tail.Step(s.heading.Opposite()))
}

// ResolveFood eats every food item under the head. Each eaten item grows the
// snake by one and is replaced with a fresh position from spawner, so the
// returned set has the same size as food. Also returns the number eaten.
func (s *Snake) ResolveFood(food FoodSet, spawner Spawner) (FoodSet, int) {
	head := s.segments[0]
	kept := make([]core.Position, 0, len(food.items))
	eaten := 0

	for _, item := range food.items {
		if item == head {
			s.Grow()
			eaten++
			continue
		}
		kept = append(kept, item)
	}

	for i := 0; i < eaten; i++ {
		kept = append(kept, spawner.RandomPosition())
	}

	return FoodSet{items: kept}, eaten
}

// Head returns the head position
func (s *Snake) Head() core.Position {
	return s.segments[0]
}

// Tail returns the last segment
func (s *Snake) Tail() core.Position {
	return s.segments[len(s.segments)-1]
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []core.Position {
	return slices.Clone(s.segments)
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.segments)
}

// Heading returns the current direction of travel
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Alive reports whether the snake has not yet hit a wall
func (s *Snake) Alive() bool {
	return s.alive
}
