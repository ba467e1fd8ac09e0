package systems

import (
	"math"

	"hebi/components"
	"hebi/config"
	"hebi/ecs"
)

// snapDistance is how close a transform must get before it lands exactly
const snapDistance = 0.01

// PositioningSystem moves pixel transforms towards their grid cells
type PositioningSystem struct {
}

// NewPositioningSystem creates a new positioning system
func NewPositioningSystem() *PositioningSystem {
	return &PositioningSystem{}
}

// Update eases every transform towards the centre of its grid cell
func (s *PositioningSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.GetEntitiesWithComponent(components.GridPositionID) {
		if !world.HasComponent(entity.ID, components.TransformID) {
			continue
		}
		gridComp, _ := world.GetComponent(entity.ID, components.GridPositionID)
		trComp, _ := world.GetComponent(entity.ID, components.TransformID)
		grid := gridComp.(*components.GridPositionComponent)
		tr := trComp.(*components.TransformComponent)

		tx, ty := config.CellCenter(grid.X, grid.Y)
		tr.X = approach(tr.X, tx, grid.Lerp)
		tr.Y = approach(tr.Y, ty, grid.Lerp)
	}
}

// approach moves from towards to by factor t, snapping when t is not in
// (0, 1) or the remaining distance is negligible
func approach(from, to, t float64) float64 {
	if t <= 0 || t >= 1 {
		return to
	}
	next := from + (to-from)*t
	if math.Abs(to-next) < snapDistance {
		return to
	}
	return next
}
