package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Outcome is how a session ended
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeDied
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	default:
		return "running"
	}
}

// Result summarises a finished (or in-progress) session
type Result struct {
	Outcome  Outcome
	Length   int
	Eaten    int
	Frames   int
	Duration time.Duration
}

// Session is one play-through from a fresh snake to death or quit. It owns
// the snake and the food set exclusively.
type Session struct {
	surface Surface
	spawner Spawner
	sounds  Sounds
	clock   TimeProvider

	bounds        core.Bounds
	frameDuration time.Duration

	snake   *Snake
	food    FoodSet
	foodSet bool

	startedAt time.Time
	frames    int
	eaten     int
	outcome   Outcome
	over      bool
}

// Option configures a Session
type Option func(*Session)

// WithFrameDuration overrides the frame cadence and input wait
func WithFrameDuration(d time.Duration) Option {
	return func(s *Session) { s.frameDuration = d }
}

// WithSounds attaches gameplay feedback
func WithSounds(sounds Sounds) Option {
	return func(s *Session) {
		if sounds != nil {
			s.sounds = sounds
		}
	}
}

// WithTimeProvider replaces the session clock
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Session) { s.clock = tp }
}

// WithBounds overrides the board size
func WithBounds(b core.Bounds) Option {
	return func(s *Session) { s.bounds = b }
}

// WithSnake starts the session with the given snake instead of the default body
func WithSnake(snake *Snake) Option {
	return func(s *Session) { s.snake = snake }
}

// WithFood starts the session with the given food set instead of spawning one
func WithFood(food FoodSet) Option {
	return func(s *Session) {
		s.food = food
		s.foodSet = true
	}
}

// NewSession prepares a session; nothing is drawn until the first Step
func NewSession(surface Surface, spawner Spawner, opts ...Option) *Session {
	s := &Session{
		surface:       surface,
		spawner:       spawner,
		sounds:        silentSounds{},
		clock:         NewMonotonicTimeProvider(),
		bounds:        core.Bounds{Width: constants.BoardWidth, Height: constants.BoardHeight},
		frameDuration: constants.FrameDuration,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.snake == nil {
		s.snake = NewSnake(s.bounds)
	}
	if !s.foodSet {
		s.food = NewFoodSet(spawner, constants.FoodCount)
	}

	s.startedAt = s.clock.Now()
	return s
}

// Step runs one frame: draw, advance, eat, death check, then wait up to one
// frame duration for input. Returns the outcome and whether the session is over.
func (s *Session) Step() (Outcome, bool) {
	if s.over {
		return s.outcome, true
	}
	s.frames++

	s.draw()

	s.snake.Advance()

	var eaten int
	s.food, eaten = s.snake.ResolveFood(s.food, s.spawner)
	if eaten > 0 {
		s.eaten += eaten
		s.sounds.PlayEat()
		log.Printf("Ate %d food at %v, length now %d", eaten, s.snake.Head(), s.snake.Len())
	}

	if !s.snake.Alive() {
		s.clearDisplay()
		s.finish(OutcomeDied)
		s.sounds.PlayDeath()
	}

	// The input wait is also the frame pacing
	input, ok := s.surface.PollInput(s.frameDuration)
	if ok {
		switch input.Kind {
		case InputQuit:
			// Quit wins over a death detected this frame
			s.clearDisplay()
			s.finish(OutcomeQuit)
		case InputTurn:
			if s.snake.Turn(input.Dir) {
				log.Printf("Turned %s", input.Dir)
			}
		}
	}

	return s.outcome, s.over
}

// Run steps frames until the snake dies or the player quits
func (s *Session) Run() Result {
	log.Printf("Session started: head %v heading %s, %d food", s.snake.Head(), s.snake.Heading(), s.food.Len())

	for {
		if _, over := s.Step(); over {
			break
		}
	}

	r := s.Result()
	log.Printf("Session ended: %s after %d frames, length %d, eaten %d, %s",
		r.Outcome, r.Frames, r.Length, r.Eaten, r.Duration.Round(time.Millisecond))
	return r
}

// Result returns the session summary so far
func (s *Session) Result() Result {
	return Result{
		Outcome:  s.outcome,
		Length:   s.snake.Len(),
		Eaten:    s.eaten,
		Frames:   s.frames,
		Duration: s.clock.Now().Sub(s.startedAt),
	}
}

// Snake returns the session's snake for inspection
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the current food set
func (s *Session) Food() FoodSet {
	return s.food
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.over = true
}

func (s *Session) clearDisplay() {
	s.surface.Clear()
	s.surface.Show()
}

// draw renders the border, food and snake
func (s *Session) draw() {
	w, h := s.bounds.Width, s.bounds.Height
	s.surface.Clear()

	for x := 0; x < w; x++ {
		s.surface.DrawCell(core.Position{X: x, Y: 0}, constants.GlyphWallHorizontal, StyleWall)
		s.surface.DrawCell(core.Position{X: x, Y: h}, constants.GlyphWallHorizontal, StyleWall)
	}
	for y := 0; y < h; y++ {
		s.surface.DrawCell(core.Position{X: 0, Y: y}, constants.GlyphWallVertical, StyleWall)
		s.surface.DrawCell(core.Position{X: w, Y: y}, constants.GlyphWallVertical, StyleWall)
	}

	for _, p := range s.food.items {
		s.surface.DrawCell(p, constants.GlyphFood, StyleFood)
	}
	for _, p := range s.snake.segments {
		s.surface.DrawCell(p, constants.GlyphSnake, StyleSnake)
	}

	s.surface.Show()
}
