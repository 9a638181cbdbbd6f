package algo

import "github.com/elektrokombinacija/sokoban/internal/core"

// unreachable marks a square with no path to a goal in the distance table.
const unreachable = -1

// DistTable holds, for every square and every goal, the minimum number of
// pushes a lone box at that square needs to reach the goal, ignoring other
// boxes. Built once per puzzle, read-only for the whole search.
type DistTable struct {
	width  int
	height int
	goals  int
	// dist is indexed [goal*width*height + y*width + x]; unreachable
	// squares hold -1.
	dist []int
}

// ComputeGoalDistances runs one breadth-first search per goal, outward
// over non-wall squares, and records push distances for every square.
// Box occupancy is ignored on purpose: that is what keeps the resulting
// heuristic admissible.
func ComputeGoalDistances(p *core.Puzzle) *DistTable {
	goals := make([]core.Pos, 0, len(p.Goals))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.Goals[core.Pos{X: x, Y: y}] {
				goals = append(goals, core.Pos{X: x, Y: y})
			}
		}
	}

	t := &DistTable{
		width:  p.Width,
		height: p.Height,
		goals:  len(goals),
		dist:   make([]int, len(goals)*p.Width*p.Height),
	}
	for i := range t.dist {
		t.dist[i] = unreachable
	}

	for gi, goal := range goals {
		base := gi * p.Width * p.Height
		t.dist[base+goal.Y*p.Width+goal.X] = 0
		queue := []core.Pos{goal}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			d := t.dist[base+cur.Y*p.Width+cur.X]

			for _, dir := range core.Directions {
				next := cur.Add(dir.Delta())
				if !p.InBounds(next) || p.Walls[next] {
					continue
				}
				idx := base + next.Y*p.Width + next.X
				if t.dist[idx] != unreachable {
					continue
				}
				t.dist[idx] = d + 1
				queue = append(queue, next)
			}
		}
	}
	return t
}

// Heuristic returns the admissible lower bound on remaining pushes: the
// sum over boxes of each box's distance to its nearest goal. ok is false
// when some box cannot reach any goal, i.e. the bound is infinite and the
// state is provably unsolvable.
func (t *DistTable) Heuristic(boxes []core.Pos) (h int, ok bool) {
	for _, box := range boxes {
		best := unreachable
		for gi := 0; gi < t.goals; gi++ {
			d := t.dist[gi*t.width*t.height+box.Y*t.width+box.X]
			if d == unreachable {
				continue
			}
			if best == unreachable || d < best {
				best = d
			}
		}
		if best == unreachable {
			return 0, false
		}
		h += best
	}
	return h, true
}
