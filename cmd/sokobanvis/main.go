// Command sokobanvis solves a puzzle and plays the solution back in a
// Gio window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/sokoban/internal/algo"
	"github.com/elektrokombinacija/sokoban/internal/core"
	"github.com/elektrokombinacija/sokoban/internal/vis"
)

func main() {
	preset := flag.String("preset", "", "preset puzzle ID (instead of a file)")
	timeout := flag.Int("t", 60, "solve timeout in seconds")
	maxStates := flag.Int("m", 10_000_000, "maximum states to explore")
	flag.Parse()

	text, err := loadPuzzle(*preset, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	application, err := vis.NewApp(text, algo.Options{
		Timeout:   time.Duration(*timeout) * time.Second,
		MaxStates: *maxStates,
	})
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Sokoban Playback"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)

		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadPuzzle(presetID, path string) (string, error) {
	if presetID != "" {
		p, ok := core.PresetByID(presetID)
		if !ok {
			return "", fmt.Errorf("unknown preset %q", presetID)
		}
		return p.Text, nil
	}
	if path == "" {
		return "", fmt.Errorf("usage: sokobanvis [-preset id | puzzle-file]")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
