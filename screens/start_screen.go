package screens

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hebi/config"
)

// Error constants for screen transitions
var (
	ErrNewGame = errors.New("new game")
	ErrQuit    = errors.New("quit")
)

// charWidth is the width of a debug font glyph
const charWidth = 6

// StartScreen shows the title until the player starts or quits
type StartScreen struct {
	*BaseScreen
	lines []string
}

// NewStartScreen creates a title screen describing the map about to be played
func NewStartScreen(width, height int, mapName string, seed uint64) *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(width, height),
		lines: []string{
			config.Title,
			"",
			fmt.Sprintf("map: %s  seed: %d", mapName, seed),
			"",
			"Press Enter to start",
			"Esc to quit",
		},
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw renders the title lines centred on the screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)

	lineSpacing := 20
	startY := s.GetHeight()/2 - len(s.lines)*lineSpacing/2
	for i, line := range s.lines {
		x := (s.GetWidth() - len(line)*charWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, startY+i*lineSpacing)
	}
}
