package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hebi/components"
	"hebi/ecs"
	"hebi/generation"
	"hebi/render"
	"hebi/spawners"
	"hebi/systems"
)

// MapViewer implements ebiten.Game for browsing generated maps.
type MapViewer struct {
	world        *ecs.World
	mapType      generation.MapType
	generator    *generation.MapGenerator
	mapSystem    *systems.MapSystem
	renderSystem *render.RenderSystem
	width        int
	height       int
}

// NewMapViewer creates a viewer showing the map generated from seed
func NewMapViewer(mapType generation.MapType, seed uint64, width, height int) *MapViewer {
	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, systems.GetMessageLog().Add)

	viewer := &MapViewer{
		world:        world,
		mapType:      mapType,
		generator:    generation.NewMapGenerator(seed),
		mapSystem:    systems.NewMapSystem(spawner),
		renderSystem: render.NewRenderSystem(),
		width:        width,
		height:       height,
	}
	viewer.regenerate()

	systems.GetMessageLog().Add("Map Viewer - Space for the next seed, F1 for the log")
	return viewer
}

// regenerate rebuilds the map from the generator's current seed
func (v *MapViewer) regenerate() {
	v.generator.SetSeed(v.generator.Seed())
	data := v.generator.Generate(v.mapType)
	v.mapSystem.LoadMap(v.world, data)
	log.Printf("[HEBI] [INFO] viewing seed=%d walls=%d spawns=%d\n%s",
		v.generator.Seed(), data.Count(components.CellWall), data.Count(components.CellSpawn), data)
}

// Update handles viewer input
func (v *MapViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.generator.SetSeed(v.generator.Seed() + 1)
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		v.renderSystem.ToggleLog()
	}
	return nil
}

// Draw renders the current map and its seed
func (v *MapViewer) Draw(screen *ebiten.Image) {
	v.renderSystem.Draw(v.world, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed: %d", v.generator.Seed()))
}

// Layout implements ebiten.Game's Layout.
func (v *MapViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
