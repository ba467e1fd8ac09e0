package systems

import (
	"hebi/components"
	"hebi/ecs"
	"hebi/spawners"
)

// MapSystem instantiates levels into the world and tracks the active one
type MapSystem struct {
	spawner *spawners.EntitySpawner
	data    *components.MapData
}

// NewMapSystem creates a new map system
func NewMapSystem(spawner *spawners.EntitySpawner) *MapSystem {
	return &MapSystem{spawner: spawner}
}

// Update is a no-op; levels only change through LoadMap
func (s *MapSystem) Update(world *ecs.World, dt float64) {
}

// LoadMap creates the map entity plus one entity per wall and spawn cell.
// Terrain from a previously loaded map is removed first.
func (s *MapSystem) LoadMap(world *ecs.World, data *components.MapData) *ecs.Entity {
	for _, tag := range []string{spawners.TagMap, spawners.TagWall, spawners.TagSpawn} {
		for _, entity := range world.GetEntitiesWithTag(tag) {
			world.RemoveEntity(entity.ID)
		}
	}

	mapEntity := s.spawner.CreateMap(data)
	s.data = data

	walls, spawns := 0, 0
	for _, p := range data.Points() {
		cell := data.Cell(p.X, p.Y)
		switch cell.Type {
		case components.CellWall:
			s.spawner.CreateWall(p.X, p.Y)
			walls++
		case components.CellSpawn:
			s.spawner.CreateSpawnMarker(p.X, p.Y, cell.Facing)
			spawns++
		}
	}

	GetMessageLog().Addf(MessageTypeSystem, "Loaded %dx%d map: %d walls, %d spawns", data.Width, data.Height, walls, spawns)
	world.EmitEvent(MapLoadedEvent{
		MapID:  mapEntity.ID,
		Width:  data.Width,
		Height: data.Height,
		Walls:  walls,
		Spawns: spawns,
	})

	return mapEntity
}

// ActiveMap returns the level loaded last, or nil
func (s *MapSystem) ActiveMap() *components.MapData {
	return s.data
}

// SpawnPoint picks where a snake enters data: the first spawn cell in row
// order, otherwise the map centre facing up.
func SpawnPoint(data *components.MapData) (int, int, components.Direction) {
	if spawns := data.Spawns(); len(spawns) > 0 {
		p := spawns[0]
		return p.X, p.Y, data.Cell(p.X, p.Y).Facing
	}
	return data.Width / 2, data.Height / 2, components.Up
}
