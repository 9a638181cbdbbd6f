package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

func TestGoalDistancesCorridor(t *testing.T) {
	puzzle, _ := mustParse(t, "#####\n"+
		"#.$@#\n"+
		"#####")

	table := ComputeGoalDistances(puzzle)

	h, ok := table.Heuristic([]core.Pos{{X: 2, Y: 1}})
	require.True(t, ok)
	assert.Equal(t, 1, h)

	h, ok = table.Heuristic([]core.Pos{{X: 3, Y: 1}})
	require.True(t, ok)
	assert.Equal(t, 2, h)
}

func TestHeuristicSumsOverBoxes(t *testing.T) {
	puzzle, _ := mustParse(t, "######\n"+
		"#    #\n"+
		"# $$ #\n"+
		"# .. #\n"+
		"# @  #\n"+
		"######")

	table := ComputeGoalDistances(puzzle)

	// Each box is one push above its nearest goal.
	h, ok := table.Heuristic([]core.Pos{{X: 2, Y: 2}, {X: 3, Y: 2}})
	require.True(t, ok)
	assert.Equal(t, 2, h)
}

func TestHeuristicWalledOffGoal(t *testing.T) {
	puzzle, initial := mustParse(t, "#######\n"+
		"#@$ ###\n"+
		"####.##\n"+
		"#######")

	table := ComputeGoalDistances(puzzle)

	_, ok := table.Heuristic(initial.Boxes)
	assert.False(t, ok, "box cannot reach the sealed goal")
}

func TestHeuristicNeverOverestimates(t *testing.T) {
	// The heuristic must lower-bound the true optimal push count on a
	// puzzle where box-box interference makes the real cost higher.
	puzzle, initial := mustParse(t, "########\n"+
		"#      #\n"+
		"# $$$  #\n"+
		"# ...  #\n"+
		"#@     #\n"+
		"########")

	table := ComputeGoalDistances(puzzle)
	h, ok := table.Heuristic(initial.Boxes)
	require.True(t, ok)

	result := SolvePuzzle("########\n"+
		"#      #\n"+
		"# $$$  #\n"+
		"# ...  #\n"+
		"#@     #\n"+
		"########", Options{})
	require.True(t, result.Success)
	assert.LessOrEqual(t, h, len(result.Solution))
}
