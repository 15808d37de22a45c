package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nacardin/rectshow/config"
	"github.com/nacardin/rectshow/core"
	"github.com/nacardin/rectshow/event"
	"github.com/nacardin/rectshow/input"
	"github.com/nacardin/rectshow/pacer"
	"github.com/nacardin/rectshow/raster"
	"github.com/nacardin/rectshow/scene"
	"github.com/nacardin/rectshow/sound"
	"github.com/nacardin/rectshow/surface/termview"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logClose, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logClose()

	view, err := termview.New(cfg.Width, cfg.Height, time.Second/time.Duration(cfg.RefreshHz), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Screen owns the terminal from here on; reset it before any crash output
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	player := sound.NewPlayer(cfg.Sound, logger)

	queue := event.NewQueue()
	sc := scene.New()

	disp := input.NewDispatcher(sc, input.DefaultKeyTable(), cfg.MoveStep, cfg.Policy(), logger)
	disp.SetButtonHook(func(code uint32, pressed bool) {
		if pressed {
			player.Click()
		}
	})

	rz := raster.New(cfg.Width, cfg.Height)
	p := pacer.New(view, sc, rz, disp, queue)

	view.Start(queue)
	runErr := p.Run()

	view.Fini()
	player.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger opens the diagnostics destination. Stdout is unusable
// while tcell owns the terminal, so the default is to discard.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}
