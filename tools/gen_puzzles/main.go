// Command gen_puzzles writes the preset puzzle catalog to disk as plain
// text files, for use with the sokoban CLI and external solvers.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

func main() {
	outDir := flag.String("out", "puzzles", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	for _, preset := range core.Presets() {
		path := filepath.Join(*outDir, preset.ID+".txt")
		if err := os.WriteFile(path, []byte(preset.Text+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%s)\n", path, preset.Difficulty)
	}
}
