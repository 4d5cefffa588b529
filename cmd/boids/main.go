package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to a .json or .toml configuration file")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile)
		if err != nil {
			golog.New(golog.ErrorLevel, os.Stderr).Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		golog.New(golog.ErrorLevel, os.Stderr).Fatalf("Invalid configuration: %v", err)
	}

	logger := golog.New(logLevel(cfg.LogLevel), os.Stdout)

	game, err := simulation.NewGame(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create simulation: %v", err)
	}

	win := cfg.Window()
	ebiten.SetWindowSize(win.WidthPx, win.HeightPx)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}

func logLevel(s string) golog.Level {
	switch s {
	case "debug":
		return golog.DebugLevel
	case "error":
		return golog.ErrorLevel
	default:
		return golog.InfoLevel
	}
}
