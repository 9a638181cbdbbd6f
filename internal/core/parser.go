package core

import (
	"fmt"
	"strings"
)

// Grid cell characters of the standard Sokoban text format.
const (
	cellWall         = '#'
	cellPlayer       = '@'
	cellBox          = '$'
	cellGoal         = '.'
	cellPlayerOnGoal = '+'
	cellBoxOnGoal    = '*'
	cellFloor        = ' '
)

// ParseGrid converts puzzle text into a rectangular character grid.
// Leading and trailing blank lines are dropped; rows are right-padded
// with floor characters to the longest row's length.
func ParseGrid(text string) [][]byte {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	grid := make([][]byte, len(lines))
	for i, line := range lines {
		row := make([]byte, width)
		copy(row, line)
		for j := len(line); j < width; j++ {
			row[j] = cellFloor
		}
		grid[i] = row
	}
	return grid
}

// ParsePuzzle parses puzzle text into the static layout and the initial
// state. It rejects structurally broken puzzles (wrapping ErrInvalidPuzzle)
// so the search never has to discover them mid-flight.
func ParsePuzzle(text string) (*Puzzle, State, error) {
	grid := ParseGrid(text)
	if len(grid) == 0 {
		return nil, State{}, fmt.Errorf("%w: empty grid", ErrInvalidPuzzle)
	}

	p := &Puzzle{
		Walls:  make(map[Pos]bool),
		Goals:  make(map[Pos]bool),
		Width:  len(grid[0]),
		Height: len(grid),
	}

	var player *Pos
	var boxes []Pos

	for y, row := range grid {
		for x, c := range row {
			pos := Pos{x, y}
			switch c {
			case cellWall:
				p.Walls[pos] = true
			case cellPlayer:
				pc := pos
				player = &pc
			case cellBox:
				boxes = append(boxes, pos)
			case cellGoal:
				p.Goals[pos] = true
			case cellPlayerOnGoal:
				pc := pos
				player = &pc
				p.Goals[pos] = true
			case cellBoxOnGoal:
				boxes = append(boxes, pos)
				p.Goals[pos] = true
			}
		}
	}

	if player == nil {
		return nil, State{}, fmt.Errorf("%w: no player found", ErrInvalidPuzzle)
	}
	if len(boxes) == 0 {
		return nil, State{}, fmt.Errorf("%w: no boxes found", ErrInvalidPuzzle)
	}
	if len(p.Goals) == 0 {
		return nil, State{}, fmt.Errorf("%w: no goals found", ErrInvalidPuzzle)
	}
	if len(boxes) != len(p.Goals) {
		return nil, State{}, fmt.Errorf("%w: box count (%d) != goal count (%d)",
			ErrInvalidPuzzle, len(boxes), len(p.Goals))
	}

	return p, NewState(*player, boxes), nil
}
