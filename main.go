package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"hebi/config"
	"hebi/generation"
)

func main() {
	printMap := flag.Bool("print-map", false, "print the generated map as text and exit")
	viewMap := flag.Bool("view-map", false, "open the map viewer; Space shows the next seed")
	envFile := flag.String("env", "", "load settings from this .env file instead of ./.env")
	flag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	settings, err := config.LoadSettings(envFiles...)
	if err != nil {
		log.Fatalf("[HEBI] [FATAL] %v", err)
	}
	settings.LogSummary()

	mapType, err := settings.LoadMapType()
	if err != nil {
		log.Fatalf("[HEBI] [FATAL] %v", err)
	}

	if *printMap {
		data := generation.NewMapGenerator(settings.Seed).Generate(mapType)
		fmt.Print(data.String())
		return
	}

	windowWidth, windowHeight := config.WindowSize(mapType.Size())
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetFullscreen(settings.Fullscreen)

	var game ebiten.Game
	if *viewMap {
		ebiten.SetWindowTitle(config.Title + " - Map Viewer")
		game = NewMapViewer(mapType, settings.Seed, windowWidth, windowHeight)
	} else {
		ebiten.SetWindowTitle(config.Title)
		game = NewGame(settings, mapType, windowWidth, windowHeight)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
