package config

// Window and grid layout
const (
	Title = "Hebi"

	// Pixel size of one grid cell
	GridScale = 24
	// Pixel padding around the grid
	GridPadding = 24
)

// Gameplay timing
const (
	// Seconds between snake moves
	StepSeconds = 0.125
	// Frame delta handed to systems; ebiten runs Update at 60 TPS
	FrameSeconds = 1.0 / 60.0
)

// Snake setup
const (
	SnakeSegments = 7
	// Fraction of the remaining distance a sprite covers each frame
	SnakeLerp = 0.375

	HeadScale    = 0.875
	SegmentScale = 0.75
	WallScale    = 1.0
	SpawnScale   = 0.5
)

// WindowSize returns the window dimensions in pixels for a grid of the given size
func WindowSize(gridWidth, gridHeight int) (width, height int) {
	return gridWidth*GridScale + GridPadding*2, gridHeight*GridScale + GridPadding*2
}

// CellCenter returns the pixel centre of grid cell (x, y) inside the padded window
func CellCenter(x, y int) (float64, float64) {
	half := float64(GridScale) / 2
	return float64(GridPadding+x*GridScale) + half, float64(GridPadding+y*GridScale) + half
}
