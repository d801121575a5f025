// Example opens a window and renders a string into the character
// grid, with the debug grid-line mesh behind it.
//
//	go run ./example/ -font path/to/monospace.ttf
//
// Esc or closing the window quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tdejager/rroguelib"
	"github.com/tdejager/rroguelib/backend/opengl"
	"github.com/tdejager/rroguelib/config"
	"github.com/tdejager/rroguelib/internal/logger"
	"github.com/tdejager/rroguelib/truetype"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "rroguelib.yaml", "path to config file")
	fontPath := flag.String("font", "", "font file, overrides config")
	text := flag.String("text", "abcdefg@■", "text to render")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *fontPath != "" {
		cfg.Font.Path = *fontPath
	}

	log := logger.New(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Logging.File != "" {
		log, err = logger.NewMulti(logger.ParseLevel(cfg.Logging.Level), cfg.Logging.File)
		if err != nil {
			return err
		}
		defer log.Close()
	}

	window, err := opengl.CreateWindow(opengl.WindowConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	opengl.CloseOnEscape(window)

	surface, err := opengl.NewSurface(window, log)
	if err != nil {
		return err
	}
	defer surface.Delete()

	rl := rroguelib.New(surface, truetype.New(),
		rroguelib.WithClearColor(rgba(cfg.Render.ClearColor)),
		rroguelib.WithGridColor(cfg.Render.GridColor),
		rroguelib.WithTextColor(rgba(cfg.Render.TextColor)),
	)
	defer rl.Destroy()

	fontBytes, err := os.ReadFile(cfg.Font.Path)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	if err := rl.RegisterFont("default", fontBytes, cfg.Font.PointSize); err != nil {
		return err
	}
	log.Info("registered font %s at %gpt", cfg.Font.Path, cfg.Font.PointSize)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if err := rl.DrawGridText("default", *text); err != nil {
			return err
		}
	}
	return nil
}

func rgba(rgb [3]float32) rroguelib.Color {
	return rroguelib.Color{rgb[0], rgb[1], rgb[2], 1}
}
