package systems

import (
	"hebi/components"
	"hebi/ecs"
	"hebi/spawners"
)

// DirectionInput reports which direction keys are held
type DirectionInput interface {
	Pressed(dir components.Direction) bool
}

// inputPriority is the order held keys are checked in
var inputPriority = []components.Direction{
	components.Left,
	components.Down,
	components.Up,
	components.Right,
}

// SnakeInputSystem turns held direction keys into a queued heading
type SnakeInputSystem struct {
	input DirectionInput
}

// NewSnakeInputSystem creates an input system reading from input
func NewSnakeInputSystem(input DirectionInput) *SnakeInputSystem {
	return &SnakeInputSystem{input: input}
}

// Update queues the highest-priority held direction on every snake head.
// Reversing onto the body is ignored.
func (s *SnakeInputSystem) Update(world *ecs.World, dt float64) {
	if s.input == nil {
		return
	}

	for _, entity := range world.GetEntitiesWithTag(spawners.TagSnake) {
		comp, exists := world.GetComponent(entity.ID, components.SnakeHeadID)
		if !exists {
			continue
		}
		head := comp.(*components.SnakeHeadComponent)

		dir := head.Direction
		for _, candidate := range inputPriority {
			if s.input.Pressed(candidate) {
				dir = candidate
				break
			}
		}

		if dir == head.Direction.Opposite() || dir == head.NextDirection {
			continue
		}
		head.NextDirection = dir
		world.EmitEvent(SnakeTurnEvent{EntityID: entity.ID, Direction: dir})
	}
}
