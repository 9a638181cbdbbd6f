// Command sokoban solves a puzzle file and optionally replays the
// solution in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/elektrokombinacija/sokoban/internal/algo"
	"github.com/elektrokombinacija/sokoban/internal/core"
)

var moveNames = map[byte]string{'U': "Up", 'D': "Down", 'L': "Left", 'R': "Right"}

func main() {
	timeout := flag.Int("t", 60, "timeout in seconds")
	maxStates := flag.Int("m", 10_000_000, "maximum states to explore")
	verbose := flag.Bool("v", false, "verbose output")
	visualize := flag.Bool("visualize", false, "show solution playback in terminal")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sokoban [flags] <puzzle-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("error reading %s: %v", path, err)
	}
	text := string(data)

	fmt.Printf("Puzzle: %s\n", path)
	if *verbose {
		fmt.Printf("Puzzle contents:\n%s\n\n", text)
	}

	result := algo.SolvePuzzle(text, algo.Options{
		Timeout:   time.Duration(*timeout) * time.Second,
		MaxStates: *maxStates,
	})

	if !result.Success {
		fmt.Println("No solution found.")
		fmt.Println()
		fmt.Println("Statistics:")
		fmt.Printf("  States explored: %d\n", result.StatesExplored)
		fmt.Printf("  Time elapsed: %.2f seconds\n", result.TimeElapsed.Seconds())
		fmt.Printf("  Termination reason: %s\n", result.Reason)
		if result.Err != "" {
			fmt.Printf("  Error: %s\n", result.Err)
		}
		os.Exit(1)
	}

	fmt.Printf("Solution found in %d pushes!\n\n", len(result.Solution))
	fmt.Printf("Solution: %s\n\n", result.Solution)
	fmt.Println("Statistics:")
	fmt.Printf("  States explored: %d\n", result.StatesExplored)
	fmt.Printf("  Time elapsed: %.2f seconds\n", result.TimeElapsed.Seconds())
	fmt.Printf("  Solution length: %d pushes\n", len(result.Solution))
	fmt.Println("  Optimality: guaranteed (A*)")

	if *verbose {
		fmt.Println("\nMove sequence:")
		for i := 0; i < len(result.Solution); i++ {
			m := result.Solution[i]
			fmt.Printf("  %d. %c (%s)\n", i+1, m, moveNames[m])
		}
	}

	if *visualize {
		if err := playback(text, result.Solution, 300*time.Millisecond); err != nil {
			log.Fatalf("playback failed: %v", err)
		}
	}
}

// playback replays the solution push by push, redrawing the board between
// frames.
func playback(text, solution string, delay time.Duration) error {
	puzzle, initial, err := core.ParsePuzzle(text)
	if err != nil {
		return err
	}

	fmt.Println("\nPlayback:")
	fmt.Println("Initial state:")
	fmt.Println(core.Render(initial, puzzle))
	fmt.Println()
	time.Sleep(delay)

	current := initial
	for i := 0; i < len(solution); i++ {
		dir, ok := core.DirectionFromRune(solution[i])
		if !ok {
			return fmt.Errorf("unknown move %q", solution[i])
		}
		current, err = core.ApplyPush(current, dir, puzzle)
		if err != nil {
			return err
		}

		fmt.Print("\033[H\033[2J") // clear screen
		fmt.Printf("Move %d/%d: %c\n", i+1, len(solution), solution[i])
		fmt.Println(core.Render(current, puzzle))
		fmt.Println()
		time.Sleep(delay)
	}

	fmt.Println("Solution complete!")
	return nil
}
