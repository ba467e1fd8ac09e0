package systems

import (
	"hebi/components"
	"hebi/ecs"
	"hebi/spawners"
)

// SnakeMovementSystem advances every snake one cell per clock step
type SnakeMovementSystem struct {
	clock *Clock
}

// NewSnakeMovementSystem creates a movement system driven by clock
func NewSnakeMovementSystem(clock *Clock) *SnakeMovementSystem {
	return &SnakeMovementSystem{clock: clock}
}

// Update moves snakes once for each step that came due during dt
func (s *SnakeMovementSystem) Update(world *ecs.World, dt float64) {
	steps := s.clock.Advance(dt)
	if steps == 0 {
		return
	}

	bounds := activeMapData(world)
	for i := 0; i < steps; i++ {
		for _, entity := range world.GetEntitiesWithTag(spawners.TagSnake) {
			s.step(world, entity.ID, bounds)
		}
	}
}

// step commits the queued heading, shifts the body up behind the head and
// moves the head. Moves leaving the map are refused.
func (s *SnakeMovementSystem) step(world *ecs.World, id ecs.EntityID, bounds *components.MapData) {
	headComp, exists := world.GetComponent(id, components.SnakeHeadID)
	if !exists {
		return
	}
	head := headComp.(*components.SnakeHeadComponent)

	posComp, exists := world.GetComponent(id, components.GridPositionID)
	if !exists {
		return
	}
	pos := posComp.(*components.GridPositionComponent)

	head.Direction = head.NextDirection
	dx, dy := head.Direction.Delta()
	nx, ny := pos.X+dx, pos.Y+dy

	if bounds != nil && !bounds.InBounds(nx, ny) {
		world.EmitEvent(SnakeBlockedEvent{EntityID: id, X: pos.X, Y: pos.Y, Direction: head.Direction})
		return
	}

	prevX, prevY := pos.X, pos.Y
	for _, segID := range head.Segments {
		segComp, exists := world.GetComponent(segID, components.GridPositionID)
		if !exists {
			continue
		}
		seg := segComp.(*components.GridPositionComponent)
		seg.X, prevX = prevX, seg.X
		seg.Y, prevY = prevY, seg.Y
	}

	fromX, fromY := pos.X, pos.Y
	pos.X, pos.Y = nx, ny

	world.EmitEvent(SnakeMoveEvent{EntityID: id, FromX: fromX, FromY: fromY, ToX: nx, ToY: ny})
}

// activeMapData returns the level held by the first map entity, if any
func activeMapData(world *ecs.World) *components.MapData {
	for _, entity := range world.GetEntitiesWithTag(spawners.TagMap) {
		if comp, ok := world.GetComponent(entity.ID, components.MapComponentID); ok {
			return comp.(*components.MapComponent).Data
		}
	}
	return nil
}
