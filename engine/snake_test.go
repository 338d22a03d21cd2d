package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

var board = core.Bounds{Width: constants.BoardWidth, Height: constants.BoardHeight}

func pos(x, y int) core.Position {
	return core.Position{X: x, Y: y}
}

// TestNewSnakeInitialState verifies the fixed starting body and heading
func TestNewSnakeInitialState(t *testing.T) {
	s := NewSnake(board)

	want := []core.Position{pos(10, 10), pos(10, 9), pos(10, 8)}
	if !slices.Equal(s.Segments(), want) {
		t.Errorf("Expected segments %v, got %v", want, s.Segments())
	}
	if s.Heading() != core.DirUp {
		t.Errorf("Expected heading up, got %s", s.Heading())
	}
	if !s.Alive() {
		t.Error("Expected new snake to be alive")
	}
}

// TestAdvanceFirstFrame walks the documented first-frame scenario
func TestAdvanceFirstFrame(t *testing.T) {
	s := NewSnake(board)
	s.Advance()

	want := []core.Position{pos(10, 9), pos(10, 10), pos(10, 9)}
	if !slices.Equal(s.Segments(), want) {
		t.Errorf("Expected segments %v, got %v", want, s.Segments())
	}
	if !s.Alive() {
		t.Error("Expected snake to stay alive in bounds")
	}
}

// TestAdvancePreservesLength checks insert-one/remove-one for every heading and length
func TestAdvancePreservesLength(t *testing.T) {
	for _, d := range core.Directions {
		for n := 1; n <= 5; n++ {
			body := make([]core.Position, n)
			for i := range body {
				body[i] = pos(17, 10)
			}
			s := NewSnakeWith(body, d, board)
			for step := 0; step < 3; step++ {
				s.Advance()
				if s.Len() != n {
					t.Fatalf("heading %s length %d: expected length preserved, got %d", d, n, s.Len())
				}
			}
		}
	}
}

// TestAdvanceWallDeath covers each of the four walls
func TestAdvanceWallDeath(t *testing.T) {
	tests := []struct {
		name    string
		head    core.Position
		heading core.Direction
		newHead core.Position
	}{
		{"left wall", pos(1, 10), core.DirLeft, pos(0, 10)},
		{"top wall", pos(10, 1), core.DirUp, pos(10, 0)},
		{"right wall", pos(constants.BoardWidth-1, 10), core.DirRight, pos(constants.BoardWidth, 10)},
		{"bottom wall", pos(10, constants.BoardHeight-1), core.DirDown, pos(10, constants.BoardHeight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnakeWith([]core.Position{tt.head, tt.head.Step(tt.heading.Opposite())}, tt.heading, board)
			s.Advance()

			if s.Alive() {
				t.Errorf("Expected death at %v", s.Head())
			}
			// Body still moves on the fatal frame
			if s.Head() != tt.newHead {
				t.Errorf("Expected head %v, got %v", tt.newHead, s.Head())
			}
			if s.Len() != 2 {
				t.Errorf("Expected length 2, got %d", s.Len())
			}
		})
	}
}

// TestAdvanceOffTopLeftCorner checks stepping past the wall never wraps
func TestAdvanceOffTopLeftCorner(t *testing.T) {
	s := NewSnakeWith([]core.Position{pos(0, 0)}, core.DirLeft, board)
	s.Advance()

	if s.Head() != pos(-1, 0) {
		t.Errorf("Expected head (-1,0), got %v", s.Head())
	}
	if s.Alive() {
		t.Error("Expected snake past the left wall to be dead")
	}
}

// TestDeadStaysDead verifies Dead is terminal
func TestDeadStaysDead(t *testing.T) {
	s := NewSnakeWith([]core.Position{pos(1, 10)}, core.DirLeft, board)
	s.Advance()
	if s.Alive() {
		t.Fatal("Expected death")
	}

	s.Turn(core.DirUp)
	s.Advance()
	s.Grow()
	if s.Alive() {
		t.Error("Expected snake to remain dead")
	}
}

// TestNoSelfCollision documents that running into the body does not kill
func TestNoSelfCollision(t *testing.T) {
	// Hook shape: turning down then left then up runs the head into the body
	body := []core.Position{pos(10, 10), pos(11, 10), pos(12, 10), pos(12, 11), pos(11, 11)}
	s := NewSnakeWith(body, core.DirLeft, board)

	s.Turn(core.DirDown)
	s.Advance()
	s.Turn(core.DirRight)
	s.Advance()
	s.Turn(core.DirUp)
	s.Advance()

	if s.Head() != pos(11, 10) {
		t.Fatalf("Expected head (11,10), got %v", s.Head())
	}
	if !slices.Contains(s.Segments()[1:], s.Head()) {
		t.Fatalf("Expected head to overlap the body, got %v", s.Segments())
	}
	if !s.Alive() {
		t.Error("Expected self-intersection to leave the snake alive")
	}
}

// TestTurnRejectsReversal covers every heading/request pair
func TestTurnRejectsReversal(t *testing.T) {
	for _, h := range core.Directions {
		for _, r := range core.Directions {
			s := NewSnakeWith([]core.Position{pos(10, 10)}, h, board)
			s.Turn(r)

			want := r
			if h.IsOpposite(r) {
				want = h
			}
			if s.Heading() != want {
				t.Errorf("heading %s, turn %s: expected %s, got %s", h, r, want, s.Heading())
			}
		}
	}
}

// TestTurnUpWhileDown is the documented rejection scenario
func TestTurnUpWhileDown(t *testing.T) {
	s := NewSnakeWith([]core.Position{pos(10, 10)}, core.DirDown, board)

	if s.Turn(core.DirUp) {
		t.Error("Expected reversal to report no change")
	}
	if s.Heading() != core.DirDown {
		t.Errorf("Expected heading down, got %s", s.Heading())
	}
	if !s.Turn(core.DirLeft) {
		t.Error("Expected perpendicular turn to report a change")
	}
	if s.Turn(core.Direction(42)) {
		t.Error("Expected invalid direction to be ignored")
	}
}

// TestGrowAppendsOppositeHeading checks placement behind the tail
func TestGrowAppendsOppositeHeading(t *testing.T) {
	tail := pos(10, 10)
	want := map[core.Direction]core.Position{
		core.DirUp:    pos(10, 11),
		core.DirDown:  pos(10, 9),
		core.DirLeft:  pos(11, 10),
		core.DirRight: pos(9, 10),
	}

	for d, expected := range want {
		s := NewSnakeWith([]core.Position{pos(5, 5), tail}, d, board)
		s.Grow()

		if s.Len() != 3 {
			t.Errorf("heading %s: expected length 3, got %d", d, s.Len())
		}
		if s.Tail() != expected {
			t.Errorf("heading %s: expected new tail %v, got %v", d, expected, s.Tail())
		}
		if s.Segments()[1] != tail {
			t.Errorf("heading %s: expected old tail kept at index 1", d)
		}
	}
}

// TestResolveFoodFirstFrame eats food sitting on the first-frame head
func TestResolveFoodFirstFrame(t *testing.T) {
	s := NewSnake(board)
	spawner := NewSequenceSpawner(pos(20, 15))
	food := FoodSetOf(pos(10, 9))

	s.Advance()
	food, eaten := s.ResolveFood(food, spawner)

	if eaten != 1 {
		t.Errorf("Expected 1 eaten, got %d", eaten)
	}
	if s.Len() != 4 {
		t.Errorf("Expected length 4, got %d", s.Len())
	}
	if food.Len() != 1 {
		t.Errorf("Expected food set size 1, got %d", food.Len())
	}
	if food.Contains(pos(10, 9)) {
		t.Error("Expected eaten food to be removed")
	}
	if !food.Contains(pos(20, 15)) {
		t.Errorf("Expected replacement at (20,15), got %v", food.Items())
	}
	if spawner.Calls() != 1 {
		t.Errorf("Expected exactly one spawn, got %d", spawner.Calls())
	}
	// Grown segment extends away from travel
	if s.Tail() != pos(10, 10) {
		t.Errorf("Expected new tail (10,10), got %v", s.Tail())
	}
}

// TestResolveFoodMiss leaves everything untouched
func TestResolveFoodMiss(t *testing.T) {
	s := NewSnake(board)
	spawner := NewSequenceSpawner(pos(1, 1))
	food := FoodSetOf(pos(3, 3), pos(4, 4))

	food, eaten := s.ResolveFood(food, spawner)

	if eaten != 0 || s.Len() != 3 {
		t.Errorf("Expected no growth, got eaten=%d len=%d", eaten, s.Len())
	}
	if !slices.Equal(food.Items(), []core.Position{pos(3, 3), pos(4, 4)}) {
		t.Errorf("Expected food unchanged, got %v", food.Items())
	}
	if spawner.Calls() != 0 {
		t.Errorf("Expected no spawns, got %d", spawner.Calls())
	}
}

// TestResolveFoodMultipleMatches processes every item under the head
func TestResolveFoodMultipleMatches(t *testing.T) {
	s := NewSnake(board)
	spawner := NewSequenceSpawner(pos(2, 2), pos(3, 3))
	food := FoodSetOf(pos(10, 10), pos(5, 5), pos(10, 10))

	food, eaten := s.ResolveFood(food, spawner)

	if eaten != 2 {
		t.Errorf("Expected 2 eaten, got %d", eaten)
	}
	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	want := []core.Position{pos(5, 5), pos(2, 2), pos(3, 3)}
	if !slices.Equal(food.Items(), want) {
		t.Errorf("Expected food %v, got %v", want, food.Items())
	}
}

// TestSegmentsReturnsCopy guards snake ownership of its body
func TestSegmentsReturnsCopy(t *testing.T) {
	s := NewSnake(board)
	segs := s.Segments()
	segs[0] = pos(1, 1)

	if s.Head() != pos(10, 10) {
		t.Error("Expected mutation of returned segments not to affect the snake")
	}
}

func TestNewSnakeWithEmptyBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty body")
		}
	}()
	NewSnakeWith(nil, core.DirUp, board)
}
