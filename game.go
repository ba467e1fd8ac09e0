package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"hebi/config"
	"hebi/ecs"
	"hebi/generation"
	"hebi/render"
	"hebi/screens"
	"hebi/spawners"
	"hebi/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	settings     config.Settings
	mapType      generation.MapType
	generator    *generation.MapGenerator
	world        *ecs.World
	spawner      *spawners.EntitySpawner
	mapSystem    *systems.MapSystem
	clock        *systems.Clock
	renderSystem *render.RenderSystem
	stack        *screens.ScreenStack
	width        int
	height       int
}

// NewGame creates a game showing the title screen. The world and its
// systems are built once and reused by every new game.
func NewGame(settings config.Settings, mapType generation.MapType, width, height int) *Game {
	world := ecs.NewWorld()
	messages := systems.GetMessageLog()
	spawner := spawners.NewEntitySpawner(world, messages.Add)

	game := &Game{
		settings:     settings,
		mapType:      mapType,
		generator:    generation.NewMapGenerator(settings.Seed),
		world:        world,
		spawner:      spawner,
		mapSystem:    systems.NewMapSystem(spawner),
		clock:        systems.NewClock(config.StepSeconds),
		renderSystem: render.NewRenderSystem(),
		stack:        screens.NewScreenStack(),
		width:        width,
		height:       height,
	}

	// Input must queue a heading before movement commits it
	world.AddSystem(systems.NewSnakeInputSystem(render.NewKeyboard()))
	world.AddSystem(systems.NewSnakeMovementSystem(game.clock))
	world.AddSystem(systems.NewPositioningSystem())
	world.AddSystem(game.mapSystem)

	world.GetEventManager().Subscribe(systems.EventMapLoaded, func(e ecs.Event) {
		loaded := e.(systems.MapLoadedEvent)
		log.Printf("[HEBI] [INFO] session %s loaded %dx%d map walls=%d spawns=%d entities=%d",
			settings.SessionID, loaded.Width, loaded.Height, loaded.Walls, loaded.Spawns, world.EntityCount())
	})
	systems.NewSnakeAlerts(messages).Subscribe(world)

	game.stack.Push(screens.NewStartScreen(width, height, settings.MapName, settings.Seed))
	return game
}

// startGame empties the world, generates the next map and spawns the snake
func (g *Game) startGame() {
	g.world.Clear()
	g.clock.Reset()

	messages := systems.GetMessageLog()
	messages.Clear()

	g.mapSystem.LoadMap(g.world, g.generator.Generate(g.mapType))

	data := g.mapSystem.ActiveMap()
	x, y, facing := systems.SpawnPoint(data)
	g.spawner.CreateSnake(x, y, facing, config.SnakeSegments, data)

	messages.Add("Arrows or hjkl to steer, R for a new map, F1 for the log")
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.stack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.startGame()
		g.stack.Replace(screens.NewGameScreen(g.width, g.height, g.world, g.renderSystem, g.clock))
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stack.Layout(outsideWidth, outsideHeight)
}
