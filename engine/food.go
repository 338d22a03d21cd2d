package engine

import (
	"slices"

	"github.com/lixenwraith/vi-snake/core"
)

// FoodSet is the collection of food positions on the board. Its size is
// fixed for a session: every eaten item is replaced by exactly one new item.
type FoodSet struct {
	items []core.Position
}

// NewFoodSet spawns n food items
func NewFoodSet(spawner Spawner, n int) FoodSet {
	items := make([]core.Position, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, spawner.RandomPosition())
	}
	return FoodSet{items: items}
}

// FoodSetOf builds a food set from explicit positions
func FoodSetOf(items ...core.Position) FoodSet {
	return FoodSet{items: slices.Clone(items)}
}

// Len returns the number of food items
func (f FoodSet) Len() int {
	return len(f.items)
}

// Items returns a copy of the food positions in spawn order
func (f FoodSet) Items() []core.Position {
	return slices.Clone(f.items)
}

// Contains reports whether any food item sits at p
func (f FoodSet) Contains(p core.Position) bool {
	return slices.Contains(f.items, p)
}
