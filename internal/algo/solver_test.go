package algo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

func TestSolveOnePush(t *testing.T) {
	result := SolvePuzzle("####\n"+
		"#. #\n"+
		"#$ #\n"+
		"#@ #\n"+
		"####", Options{})

	require.True(t, result.Success, "error: %s", result.Err)
	assert.Equal(t, "U", result.Solution)
	assert.True(t, result.Optimal)
	assert.GreaterOrEqual(t, result.StatesExplored, 1)
}

func TestSolveTwoPushes(t *testing.T) {
	result := SolvePuzzle("#####\n"+
		"#.  #\n"+
		"#   #\n"+
		"#$  #\n"+
		"#@  #\n"+
		"#####", Options{})

	require.True(t, result.Success, "error: %s", result.Err)
	assert.Equal(t, "UU", result.Solution)
}

func TestSolveStartsSolved(t *testing.T) {
	result := SolvePuzzle("####\n#*@#\n####", Options{})

	require.True(t, result.Success)
	assert.Equal(t, "", result.Solution)
	assert.Equal(t, 0, result.StatesExplored)
	assert.True(t, result.Optimal)
}

func TestSolveBoxGoalMismatch(t *testing.T) {
	result := SolvePuzzle("#####\n"+
		"#@$ #\n"+
		"#..*#\n"+
		"#####", Options{})

	require.False(t, result.Success)
	assert.Equal(t, ReasonInvalidPuzzle, result.Reason)
	assert.Contains(t, result.Err, "box count")
	assert.Equal(t, 0, result.StatesExplored)
}

func TestSolveCornerBoxUnsolvable(t *testing.T) {
	// Box starts in a non-goal corner: rejected by the deadlock
	// pre-check without expanding a single state.
	result := SolvePuzzle("#####\n"+
		"#$  #\n"+
		"#  .#\n"+
		"#@  #\n"+
		"#####", Options{})

	require.False(t, result.Success)
	assert.Equal(t, ReasonUnsolvable, result.Reason)
	assert.Equal(t, 0, result.StatesExplored)
}

func TestSolveWalledOffGoalUnsolvable(t *testing.T) {
	// The goal is sealed off, so the heuristic is infinite for the
	// initial state and the search never starts.
	result := SolvePuzzle("#######\n"+
		"#@$ ###\n"+
		"####.##\n"+
		"#######", Options{})

	require.False(t, result.Success)
	assert.Equal(t, ReasonUnsolvable, result.Reason)
	assert.Equal(t, 0, result.StatesExplored)
}

func TestSolveLateralDetour(t *testing.T) {
	// The wall right of the box forces a push down before the two
	// pushes right; a direct-line bias would miss the 3-push optimum.
	result := SolvePuzzle("#######\n"+
		"#     #\n"+
		"# $#  #\n"+
		"# @ . #\n"+
		"#     #\n"+
		"#######", Options{})

	require.True(t, result.Success, "error: %s", result.Err)
	assert.Equal(t, "DRR", result.Solution)
	assert.Len(t, result.Solution, 3)
}

func TestSolveStateBudget(t *testing.T) {
	result := SolvePuzzle("#####\n"+
		"#.  #\n"+
		"#   #\n"+
		"#$  #\n"+
		"#@  #\n"+
		"#####", Options{MaxStates: 1})

	require.False(t, result.Success)
	assert.Equal(t, ReasonTimeout, result.Reason)
	assert.Equal(t, 1, result.StatesExplored)
}

func TestSolveWallClockBudget(t *testing.T) {
	puzzle, initial, err := core.ParsePuzzle("########\n" +
		"#      #\n" +
		"# .$   #\n" +
		"# . $  #\n" +
		"# .$   #\n" +
		"#  @   #\n" +
		"########")
	require.NoError(t, err)
	puzzle.DeadlockSquares = ComputeStaticDeadlocks(puzzle)
	table := ComputeGoalDistances(puzzle)

	result := Solve(initial, puzzle, table, Options{Timeout: time.Nanosecond})
	require.False(t, result.Success)
	assert.Equal(t, ReasonTimeout, result.Reason)
}

func TestSolveDeterministic(t *testing.T) {
	text := "######\n" +
		"#    #\n" +
		"# $$ #\n" +
		"# .. #\n" +
		"# @  #\n" +
		"######"

	first := SolvePuzzle(text, Options{})
	second := SolvePuzzle(text, Options{})

	require.True(t, first.Success)
	assert.Equal(t, first.Solution, second.Solution)
	assert.Equal(t, first.StatesExplored, second.StatesExplored)
}

func TestSolvePresetsReplayToGoal(t *testing.T) {
	for _, preset := range core.Presets() {
		preset := preset
		t.Run(preset.ID, func(t *testing.T) {
			result := SolvePuzzle(preset.Text, Options{})
			require.True(t, result.Success, "error: %s", result.Err)
			require.True(t, result.Optimal)

			puzzle, initial, err := core.ParsePuzzle(preset.Text)
			require.NoError(t, err)
			states, err := core.Replay(initial, result.Solution, puzzle)
			require.NoError(t, err)
			assert.True(t, core.IsGoal(states[len(states)-1], puzzle))
		})
	}
}

func TestSolveMalformedTextReportedAsInvalid(t *testing.T) {
	// Garbage input must come back as a structured failure, never a
	// panic across the solve boundary.
	result := SolvePuzzle("\x00\x01###", Options{})

	require.False(t, result.Success)
	assert.Equal(t, ReasonInvalidPuzzle, result.Reason)
}
