package spawners

import (
	"image/color"
	"strconv"

	"hebi/components"
	"hebi/config"
	"hebi/ecs"
)

// Entity tags
const (
	TagMap          = "map"
	TagWall         = "wall"
	TagSpawn        = "spawn"
	TagSnake        = "snake"
	TagSnakeSegment = "snake_segment"
)

// Draw layers
const (
	LayerTerrain = iota
	LayerSnakeBody
	LayerSnakeHead
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *ecs.World
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		logMessage: logFunc,
	}
}

// createOnGrid creates a tagged entity with a grid position, a transform
// placed on that cell and a renderable square
func (s *EntitySpawner) createOnGrid(tag string, x, y int, lerp float64, clr color.Color, scale float64, layer int) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, tag)

	s.world.AddComponent(entity.ID, components.GridPositionID, components.NewGridPosition(x, y, lerp))

	px, py := config.CellCenter(x, y)
	s.world.AddComponent(entity.ID, components.TransformID, &components.TransformComponent{X: px, Y: py})
	s.world.AddComponent(entity.ID, components.RenderableID, components.NewRenderableComponent(clr, scale, layer))

	return entity
}

// CreateMap creates the entity holding the level data
func (s *EntitySpawner) CreateMap(data *components.MapData) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, TagMap)
	s.world.AddComponent(entity.ID, components.MapComponentID, &components.MapComponent{Data: data})
	return entity
}

// CreateWall creates an impassable cell
func (s *EntitySpawner) CreateWall(x, y int) *ecs.Entity {
	entity := s.createOnGrid(TagWall, x, y, 0, config.WallColor, config.WallScale, LayerTerrain)
	s.world.AddComponent(entity.ID, components.WallID, &components.WallComponent{})
	return entity
}

// CreateSpawnMarker creates a marker for a spawn cell
func (s *EntitySpawner) CreateSpawnMarker(x, y int, facing components.Direction) *ecs.Entity {
	entity := s.createOnGrid(TagSpawn, x, y, 0, config.SpawnColor, config.SpawnScale, LayerTerrain)
	s.world.AddComponent(entity.ID, components.SpawnPointID, &components.SpawnPointComponent{Facing: facing})
	return entity
}

// CreateSnake creates a snake head at (x, y) facing dir and trails
// segments-1 body segments behind it. Segments are laid out away from the
// facing while the cells stay open on data; once blocked they stack on the
// last open cell. data may be nil.
func (s *EntitySpawner) CreateSnake(x, y int, dir components.Direction, segments int, data *components.MapData) *ecs.Entity {
	head := s.createOnGrid(TagSnake, x, y, config.SnakeLerp, config.SnakeColor, config.HeadScale, LayerSnakeHead)
	headComp := components.NewSnakeHeadComponent(dir)

	dx, dy := dir.Opposite().Delta()
	sx, sy := x, y
	for i := 1; i < segments; i++ {
		nx, ny := sx+dx, sy+dy
		if data == nil || (data.InBounds(nx, ny) && !data.IsWall(nx, ny)) {
			sx, sy = nx, ny
		}

		segment := s.createOnGrid(TagSnakeSegment, sx, sy, config.SnakeLerp, config.SnakeColor, config.SegmentScale, LayerSnakeBody)
		s.world.AddComponent(segment.ID, components.SnakeSegmentID, &components.SnakeSegmentComponent{Head: head.ID})
		headComp.Segments = append(headComp.Segments, segment.ID)
	}

	s.world.AddComponent(head.ID, components.SnakeHeadID, headComp)

	if s.logMessage != nil {
		s.logMessage("Snake spawned at " + strconv.Itoa(x) + "," + strconv.Itoa(y) + " facing " + dir.String())
	}

	return head
}
