package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridPadsRaggedRows(t *testing.T) {
	grid := ParseGrid("\n##\n####\n\n")
	require.Len(t, grid, 2)
	assert.Equal(t, "##  ", string(grid[0]))
	assert.Equal(t, "####", string(grid[1]))
}

func TestParseGridEmpty(t *testing.T) {
	assert.Nil(t, ParseGrid(""))
	assert.Nil(t, ParseGrid("\n  \n\n"))
}

func TestParsePuzzleBasic(t *testing.T) {
	text := "####\n" +
		"#. #\n" +
		"#$ #\n" +
		"#@ #\n" +
		"####"

	puzzle, initial, err := ParsePuzzle(text)
	require.NoError(t, err)

	assert.Equal(t, 4, puzzle.Width)
	assert.Equal(t, 5, puzzle.Height)
	assert.True(t, puzzle.Goals[Pos{1, 1}])
	assert.True(t, puzzle.Walls[Pos{0, 0}])
	assert.False(t, puzzle.Walls[Pos{2, 2}])

	assert.Equal(t, Pos{1, 3}, initial.Player)
	assert.Equal(t, []Pos{{1, 2}}, initial.Boxes)
}

func TestParsePuzzleCombinedCells(t *testing.T) {
	// '*' is box-on-goal, '+' is player-on-goal.
	text := "#####\n" +
		"#*+$#\n" +
		"#####"

	puzzle, initial, err := ParsePuzzle(text)
	require.NoError(t, err)

	assert.Equal(t, Pos{2, 1}, initial.Player)
	assert.ElementsMatch(t, []Pos{{1, 1}, {3, 1}}, initial.Boxes)
	assert.True(t, puzzle.Goals[Pos{1, 1}])
	assert.True(t, puzzle.Goals[Pos{2, 1}])
	assert.Len(t, puzzle.Goals, 2)
}

func TestParsePuzzleErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "empty grid"},
		{"blank lines only", "\n\n  \n", "empty grid"},
		{"no player", "####\n#.$#\n####", "no player"},
		{"no boxes", "####\n#.@#\n####", "no boxes"},
		{"no goals", "####\n#$@#\n####", "no goals"},
		{"count mismatch", "#####\n#@$ #\n#..*#\n#####", "box count"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParsePuzzle(tc.text)
			require.ErrorIs(t, err, ErrInvalidPuzzle)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
