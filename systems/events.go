package systems

import (
	"hebi/components"
	"hebi/ecs"
)

// Event type constants
const (
	EventSnakeMove    ecs.EventType = "snake_move"
	EventSnakeTurn    ecs.EventType = "snake_turn"
	EventSnakeBlocked ecs.EventType = "snake_blocked"
	EventMapLoaded    ecs.EventType = "map_loaded"
)

// SnakeMoveEvent is emitted when a snake head advances one cell
type SnakeMoveEvent struct {
	EntityID ecs.EntityID // Snake head that moved
	FromX    int
	FromY    int
	ToX      int
	ToY      int
}

// Type returns the event type
func (e SnakeMoveEvent) Type() ecs.EventType {
	return EventSnakeMove
}

// SnakeTurnEvent is emitted when input queues a new heading
type SnakeTurnEvent struct {
	EntityID  ecs.EntityID
	Direction components.Direction
}

// Type returns the event type
func (e SnakeTurnEvent) Type() ecs.EventType {
	return EventSnakeTurn
}

// SnakeBlockedEvent is emitted when a move would leave the grid
type SnakeBlockedEvent struct {
	EntityID  ecs.EntityID
	X, Y      int // Head position, unchanged
	Direction components.Direction
}

// Type returns the event type
func (e SnakeBlockedEvent) Type() ecs.EventType {
	return EventSnakeBlocked
}

// MapLoadedEvent is emitted after a level has been instantiated
type MapLoadedEvent struct {
	MapID  ecs.EntityID
	Width  int
	Height int
	Walls  int
	Spawns int
}

// Type returns the event type
func (e MapLoadedEvent) Type() ecs.EventType {
	return EventMapLoaded
}
