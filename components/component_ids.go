package components

import (
	"hebi/ecs"
)

// Component IDs used by the game
const (
	GridPositionID ecs.ComponentID = iota
	TransformID
	RenderableID
	SnakeHeadID
	SnakeSegmentID
	WallID
	SpawnPointID
	MapComponentID
)
