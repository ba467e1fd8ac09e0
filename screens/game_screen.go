package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hebi/config"
	"hebi/ecs"
	"hebi/render"
	"hebi/systems"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	world        *ecs.World
	renderSystem *render.RenderSystem
	clock        *systems.Clock
	paused       bool
}

// NewGameScreen creates a game screen around a populated world
func NewGameScreen(width, height int, world *ecs.World, renderSystem *render.RenderSystem, clock *systems.Clock) *GameScreen {
	return &GameScreen{
		BaseScreen:   NewBaseScreen(width, height),
		world:        world,
		renderSystem: renderSystem,
		clock:        clock,
	}
}

// Update advances the world by one frame.
// R restarts on a fresh map and Esc quits.
func (s *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return ErrNewGame
	}

	// Toggle the message log with F1 and pause with P
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.renderSystem.ToggleLog()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.paused = !s.paused
	}

	if !s.paused {
		s.world.Update(config.FrameSeconds)
	}
	return nil
}

// Draw draws the world and the status line above the grid
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)

	status := fmt.Sprintf("tick %d", s.clock.Ticks())
	if s.paused {
		status += "  paused"
	}
	ebitenutil.DebugPrintAt(screen, status, config.GridPadding, 4)
}
