package core

import "fmt"

// Push is one legal box push out of a state: the edge label of the
// search graph.
type Push struct {
	Dir  Direction
	From Pos // box position before the push
	To   Pos // box position after the push
	Next State
}

// Reachable returns every square the player can walk to without pushing
// a box. Boxes count as obstacles alongside walls, so the set must be
// recomputed whenever the box layout changes.
func Reachable(s State, p *Puzzle) map[Pos]bool {
	visited := map[Pos]bool{s.Player: true}
	queue := []Pos{s.Player}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next := cur.Add(d.Delta())
			if !p.InBounds(next) || visited[next] || p.Walls[next] || s.HasBox(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// LegalPushes enumerates every legal push from s. A push is legal when the
// player can reach the square behind the box and the destination is an
// in-bounds free square. Boxes are visited in canonical sorted order and
// directions in U, D, L, R order, so the result is deterministic.
func LegalPushes(s State, p *Puzzle) []Push {
	reachable := Reachable(s, p)
	var pushes []Push

	for _, box := range s.Boxes {
		for _, d := range Directions {
			delta := d.Delta()
			from := box.Sub(delta) // where the player stands to push
			to := box.Add(delta)
			if !reachable[from] {
				continue
			}
			if !p.InBounds(to) || p.Walls[to] || s.HasBox(to) {
				continue
			}
			pushes = append(pushes, Push{
				Dir:  d,
				From: box,
				To:   to,
				Next: s.WithPush(box, to),
			})
		}
	}
	return pushes
}

// ApplyPush replays a single push of a known solution: it finds the unique
// box whose push in dir is legal from s and applies it. It fails with
// ErrIllegalPush when no box qualifies, which means the solution string
// and the state have diverged.
func ApplyPush(s State, dir Direction, p *Puzzle) (State, error) {
	reachable := Reachable(s, p)
	delta := dir.Delta()

	for _, box := range s.Boxes {
		from := box.Sub(delta)
		to := box.Add(delta)
		if !reachable[from] {
			continue
		}
		if !p.InBounds(to) || p.Walls[to] || s.HasBox(to) {
			continue
		}
		return s.WithPush(box, to), nil
	}
	return State{}, fmt.Errorf("%w: no %s push from player %v", ErrIllegalPush, dir, s.Player)
}

// Replay applies a whole solution string to the initial state and returns
// every intermediate state, starting with initial itself.
func Replay(initial State, solution string, p *Puzzle) ([]State, error) {
	states := make([]State, 0, len(solution)+1)
	states = append(states, initial)
	cur := initial

	for i := 0; i < len(solution); i++ {
		dir, ok := DirectionFromRune(solution[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown move %q at index %d", ErrIllegalPush, solution[i], i)
		}
		next, err := ApplyPush(cur, dir, p)
		if err != nil {
			return nil, err
		}
		states = append(states, next)
		cur = next
	}
	return states, nil
}
