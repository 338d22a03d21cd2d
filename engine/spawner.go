package engine

import (
	"math/rand"

	"github.com/lixenwraith/vi-snake/core"
)

// Spawner supplies positions for new food items
type Spawner interface {
	RandomPosition() core.Position
}

// RandSpawner draws uniformly from the board's spawn area.
// No check is made against the snake body or existing food.
type RandSpawner struct {
	rng  *rand.Rand
	area core.Area
}

// NewRandSpawner creates a spawner for the given board seeded with seed
func NewRandSpawner(bounds core.Bounds, seed int64) *RandSpawner {
	return &RandSpawner{
		rng:  rand.New(rand.NewSource(seed)),
		area: bounds.SpawnArea(),
	}
}

// RandomPosition returns a position inside the spawn area
func (s *RandSpawner) RandomPosition() core.Position {
	return core.Position{
		X: s.area.X + s.rng.Intn(s.area.Width),
		Y: s.area.Y + s.rng.Intn(s.area.Height),
	}
}
