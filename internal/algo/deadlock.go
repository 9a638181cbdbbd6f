// Package algo implements the Sokoban solving pipeline: deadlock
// detection, the goal-distance heuristic, and push-optimal A* search.
package algo

import "github.com/elektrokombinacija/sokoban/internal/core"

// isCornerDeadlock reports whether pos is a non-goal square with two
// orthogonally adjacent walls meeting at a right angle. A box pushed onto
// such a square can never leave it: every push out of the corner would
// require the player to stand inside a wall.
func isCornerDeadlock(pos core.Pos, p *core.Puzzle) bool {
	if p.Goals[pos] {
		return false
	}
	top := p.Walls[core.Pos{X: pos.X, Y: pos.Y - 1}]
	bottom := p.Walls[core.Pos{X: pos.X, Y: pos.Y + 1}]
	left := p.Walls[core.Pos{X: pos.X - 1, Y: pos.Y}]
	right := p.Walls[core.Pos{X: pos.X + 1, Y: pos.Y}]

	return (top && left) || (top && right) || (bottom && left) || (bottom && right)
}

// ComputeStaticDeadlocks scans the whole grid once and returns every
// square where a box would be stuck forever regardless of the rest of the
// state. Idempotent: the result depends only on walls and goals.
func ComputeStaticDeadlocks(p *core.Puzzle) map[core.Pos]bool {
	deadlocks := make(map[core.Pos]bool)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			pos := core.Pos{X: x, Y: y}
			if p.Walls[pos] || p.Goals[pos] {
				continue
			}
			if isCornerDeadlock(pos, p) {
				deadlocks[pos] = true
			}
		}
	}
	return deadlocks
}

// IsFreezeDeadlock reports whether some box off a goal can never move
// again: for every direction either the destination is blocked by a wall
// or box, or the square the player would push from is a wall. Depends on
// the live box layout, so it is evaluated per state.
func IsFreezeDeadlock(s core.State, p *core.Puzzle) bool {
	for _, box := range s.Boxes {
		if p.Goals[box] {
			continue
		}
		canMove := false
		for _, d := range core.Directions {
			delta := d.Delta()
			to := box.Add(delta)
			from := box.Sub(delta)
			if !p.Walls[to] && !s.HasBox(to) && !p.Walls[from] {
				canMove = true
				break
			}
		}
		if !canMove {
			return true
		}
	}
	return false
}

// Is2x2Deadlock reports whether four boxes fill an axis-aligned 2x2 block
// that is not entirely goals. No box in such a block can be pushed without
// colliding with a neighbor, so the cluster is immovable.
func Is2x2Deadlock(s core.State, p *core.Puzzle) bool {
	for _, box := range s.Boxes {
		square := [4]core.Pos{
			box,
			{X: box.X + 1, Y: box.Y},
			{X: box.X, Y: box.Y + 1},
			{X: box.X + 1, Y: box.Y + 1},
		}
		filled := true
		allGoals := true
		for _, pos := range square {
			if !s.HasBox(pos) {
				filled = false
				break
			}
			if !p.Goals[pos] {
				allGoals = false
			}
		}
		if filled && !allGoals {
			return true
		}
	}
	return false
}

// IsDeadlocked applies every deadlock test to a settled state. A false
// result proves nothing; the search itself prunes only on the
// precomputed squares, see Solve.
func IsDeadlocked(s core.State, p *core.Puzzle) bool {
	// Precomputed squares first, O(boxes) map lookups.
	for _, box := range s.Boxes {
		if p.DeadlockSquares[box] {
			return true
		}
	}
	if IsFreezeDeadlock(s, p) {
		return true
	}
	if Is2x2Deadlock(s, p) {
		return true
	}
	return false
}
