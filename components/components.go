package components

import (
	"image/color"

	"hebi/ecs"
)

// GridPositionComponent stores an entity's cell on the map
type GridPositionComponent struct {
	X, Y int
	// Lerp is the per-frame interpolation factor towards this cell.
	// Zero snaps the transform immediately.
	Lerp float64
}

// NewGridPosition creates a grid position with the given interpolation factor
func NewGridPosition(x, y int, lerp float64) *GridPositionComponent {
	return &GridPositionComponent{X: x, Y: y, Lerp: lerp}
}

// TransformComponent is the pixel-space centre an entity is drawn at
type TransformComponent struct {
	X, Y float64
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Color color.Color
	// Scale is the square's side as a fraction of one grid cell
	Scale float64
	// Layer orders drawing; higher layers are drawn later
	Layer int
}

// NewRenderableComponent creates a renderable square
func NewRenderableComponent(clr color.Color, scale float64, layer int) *RenderableComponent {
	return &RenderableComponent{Color: clr, Scale: scale, Layer: layer}
}

// SnakeHeadComponent drives a snake. Segments are ordered from the
// segment nearest the head to the tail.
type SnakeHeadComponent struct {
	Direction     Direction
	NextDirection Direction
	Segments      []ecs.EntityID
}

// NewSnakeHeadComponent creates a head facing the given direction
func NewSnakeHeadComponent(direction Direction) *SnakeHeadComponent {
	return &SnakeHeadComponent{
		Direction:     direction,
		NextDirection: direction,
	}
}

// SnakeSegmentComponent marks a body segment
type SnakeSegmentComponent struct {
	Head ecs.EntityID
}

// WallComponent marks an impassable map cell
type WallComponent struct{}

// SpawnPointComponent marks a spawn cell and its initial facing
type SpawnPointComponent struct {
	Facing Direction
}

// MapComponent holds the active level
type MapComponent struct {
	Data *MapData
}
