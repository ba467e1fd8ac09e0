package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hebi/components"
	"hebi/config"
	"hebi/ecs"
	"hebi/spawners"
	"hebi/systems"
)

const (
	logLines      = 12
	logLineHeight = 16
)

// RenderSystem draws the grid and every renderable entity as a square
type RenderSystem struct {
	showLog bool
	lineImg *ebiten.Image // Scratch image for tinting one line of text
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// ToggleLog shows or hides the message log overlay
func (s *RenderSystem) ToggleLog() {
	s.showLog = !s.showLog
}

// Draw renders the world onto screen
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(config.Background)

	s.drawGrid(world, screen)
	s.drawEntities(world, screen)
	s.drawMessages(screen)
}

// drawGrid fills the playing field behind the active map
func (s *RenderSystem) drawGrid(world *ecs.World, screen *ebiten.Image) {
	entities := world.GetEntitiesWithTag(spawners.TagMap)
	if len(entities) == 0 {
		return
	}
	comp, exists := world.GetComponent(entities[0].ID, components.MapComponentID)
	if !exists {
		return
	}
	data := comp.(*components.MapComponent).Data

	vector.DrawFilledRect(screen,
		float32(config.GridPadding), float32(config.GridPadding),
		float32(data.Width*config.GridScale), float32(data.Height*config.GridScale),
		config.GridBackground, false)
}

// drawEntities draws renderables in layer order
func (s *RenderSystem) drawEntities(world *ecs.World, screen *ebiten.Image) {
	type drawable struct {
		transform  *components.TransformComponent
		renderable *components.RenderableComponent
	}

	var items []drawable
	for _, entity := range world.GetEntitiesWithComponent(components.RenderableID) {
		tr, exists := world.GetComponent(entity.ID, components.TransformID)
		if !exists {
			continue
		}
		rend, _ := world.GetComponent(entity.ID, components.RenderableID)
		items = append(items, drawable{
			transform:  tr.(*components.TransformComponent),
			renderable: rend.(*components.RenderableComponent),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].renderable.Layer < items[j].renderable.Layer
	})

	for _, item := range items {
		size := item.renderable.Scale * config.GridScale
		x := item.transform.X - size/2
		y := item.transform.Y - size/2
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), item.renderable.Color, false)
	}
}

// drawMessages prints the latest message below the grid, or the recent
// history when the overlay is open
func (s *RenderSystem) drawMessages(screen *ebiten.Image) {
	messages := systems.GetMessageLog()
	height := screen.Bounds().Dy()

	if !s.showLog {
		if recent := messages.RecentMessages(1); len(recent) > 0 {
			s.drawMessage(screen, recent[0], config.GridPadding, height-config.GridPadding+4)
		}
		return
	}

	for i, msg := range messages.RecentMessages(logLines) {
		s.drawMessage(screen, msg, config.GridPadding+4, config.GridPadding+4+i*logLineHeight)
	}
}

// drawMessage prints msg at (x, y) tinted with its type colour
func (s *RenderSystem) drawMessage(screen *ebiten.Image, msg systems.Message, x, y int) {
	width := screen.Bounds().Dx()
	if s.lineImg == nil || s.lineImg.Bounds().Dx() != width {
		s.lineImg = ebiten.NewImage(width, logLineHeight)
	}
	s.lineImg.Clear()
	ebitenutil.DebugPrintAt(s.lineImg, msg.Text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(msg.Color())
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(s.lineImg, op)
}
