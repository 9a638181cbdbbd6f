package algo

import (
	"fmt"
	"time"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

// Reason classifies why a solve attempt failed.
type Reason string

const (
	// ReasonInvalidPuzzle: structural defect found before search started.
	ReasonInvalidPuzzle Reason = "invalid_puzzle"
	// ReasonUnsolvable: the frontier was exhausted with no solution, or a
	// pre-check proved the puzzle unsolvable. Definitive and non-retryable.
	ReasonUnsolvable Reason = "unsolvable"
	// ReasonTimeout: the wall-clock or node budget ran out. Retryable with
	// a larger budget.
	ReasonTimeout Reason = "timeout"
)

// Options bounds a solve invocation.
type Options struct {
	Timeout   time.Duration
	MaxStates int
}

// DefaultOptions are used for zero-valued fields.
var DefaultOptions = Options{
	Timeout:   60 * time.Second,
	MaxStates: 10_000_000,
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultOptions.Timeout
	}
	if o.MaxStates <= 0 {
		o.MaxStates = DefaultOptions.MaxStates
	}
	return o
}

// Result is the structured outcome of a solve attempt. Failures are
// encoded here rather than surfaced as errors: Reason says why and Err
// carries the human-readable message.
type Result struct {
	Success        bool
	Solution       string // push directions, one of U/D/L/R per push
	Optimal        bool   // always true on success: A* with admissible h
	Reason         Reason // set when Success is false
	Err            string // human-readable failure message
	StatesExplored int
	TimeElapsed    time.Duration
}

// SolvePuzzle is the single entry point: parse the puzzle text, precompute
// deadlock squares and goal distances, then search. Every failure mode
// comes back as a structured Result; a panic inside the pipeline (e.g. a
// malformed grid slipping past validation) is reported as invalid_puzzle
// rather than crashing the caller.
func SolvePuzzle(text string, opts Options) (result Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Reason:      ReasonInvalidPuzzle,
				Err:         fmt.Sprint(r),
				TimeElapsed: time.Since(start),
			}
		}
	}()

	puzzle, initial, err := core.ParsePuzzle(text)
	if err != nil {
		return Result{
			Reason:      ReasonInvalidPuzzle,
			Err:         err.Error(),
			TimeElapsed: time.Since(start),
		}
	}

	puzzle.DeadlockSquares = ComputeStaticDeadlocks(puzzle)
	table := ComputeGoalDistances(puzzle)

	return Solve(initial, puzzle, table, opts)
}
