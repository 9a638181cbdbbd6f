package core

import "strings"

// Render draws a state back into the standard text format. Useful for
// terminal playback and for round-trip checks in tests.
func Render(s State, p *Puzzle) string {
	grid := make([][]byte, p.Height)
	for y := range grid {
		row := make([]byte, p.Width)
		for x := range row {
			row[x] = cellFloor
		}
		grid[y] = row
	}

	for pos := range p.Walls {
		grid[pos.Y][pos.X] = cellWall
	}
	for pos := range p.Goals {
		grid[pos.Y][pos.X] = cellGoal
	}
	for _, box := range s.Boxes {
		if p.Goals[box] {
			grid[box.Y][box.X] = cellBoxOnGoal
		} else {
			grid[box.Y][box.X] = cellBox
		}
	}
	if p.Goals[s.Player] {
		grid[s.Player.Y][s.Player.X] = cellPlayerOnGoal
	} else {
		grid[s.Player.Y][s.Player.X] = cellPlayer
	}

	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
