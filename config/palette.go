package config

import "image/color"

// Dracula palette
var (
	Background     = color.RGBA{0x28, 0x2a, 0x36, 0xff}
	GridBackground = color.RGBA{0x44, 0x47, 0x5a, 0xff}
	WallColor      = color.RGBA{0x62, 0x72, 0xa4, 0xff}
	SnakeColor     = color.RGBA{0x50, 0xfa, 0x7b, 0xff}
	SpawnColor     = color.RGBA{0xff, 0xb8, 0x6c, 0xff}
	TextColor      = color.RGBA{0xf8, 0xf8, 0xf2, 0xff}
)
