package algo

import (
	"container/heap"
	"time"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

// searchNode is a frontier entry.
type searchNode struct {
	state  core.State
	key    string
	g      int    // pushes so far
	f      int    // g + h
	seq    uint64 // FIFO tie-breaker
	dir    core.Direction
	parent *searchNode
	index  int // heap index
}

// searchHeap implements heap.Interface. Equal f values are ordered by
// insertion sequence, so runs over the same puzzle pop states in the same
// order and produce byte-identical solutions.
type searchHeap []*searchNode

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *searchHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// onDeadlockSquare reports whether any box sits on a precomputed
// deadlock square.
func onDeadlockSquare(s core.State, p *core.Puzzle) bool {
	for _, box := range s.Boxes {
		if p.DeadlockSquares[box] {
			return true
		}
	}
	return false
}

// reconstructSolution walks the parent chain back to the root and returns
// the push-direction string.
func reconstructSolution(node *searchNode) string {
	var depth int
	for n := node; n.parent != nil; n = n.parent {
		depth++
	}
	buf := make([]byte, depth)
	for n := node; n.parent != nil; n = n.parent {
		depth--
		buf[depth] = n.dir.Rune()
	}
	return string(buf)
}

// Solve runs push-optimal A* from initial. Edge cost is one push and the
// heuristic never overestimates, so the first goal state reached is
// optimal. The wall-clock and node budgets are polled before each pop.
func Solve(initial core.State, p *core.Puzzle, table *DistTable, opts Options) Result {
	opts = opts.withDefaults()
	start := time.Now()

	done := func(r Result) Result {
		r.TimeElapsed = time.Since(start)
		return r
	}

	if core.IsGoal(initial, p) {
		return done(Result{Success: true, Solution: "", Optimal: true})
	}

	h0, ok := table.Heuristic(initial.Boxes)
	if !ok || onDeadlockSquare(initial, p) {
		return done(Result{
			Reason: ReasonUnsolvable,
			Err:    "no solution exists",
		})
	}

	root := &searchNode{state: initial, key: initial.Key(), f: h0}
	open := &searchHeap{}
	heap.Init(open)
	heap.Push(open, root)

	closed := make(map[string]bool)
	bestG := map[string]int{root.key: 0}
	var seq uint64
	explored := 0

	for open.Len() > 0 {
		if time.Since(start) > opts.Timeout {
			return done(Result{
				Reason:         ReasonTimeout,
				Err:            "search terminated: timeout reached",
				StatesExplored: explored,
			})
		}
		if explored >= opts.MaxStates {
			return done(Result{
				Reason:         ReasonTimeout,
				Err:            "search terminated: max states reached",
				StatesExplored: explored,
			})
		}

		current := heap.Pop(open).(*searchNode)

		// Lazy deletion: a better path to this state was finalized first.
		if closed[current.key] {
			continue
		}
		closed[current.key] = true
		explored++

		for _, push := range core.LegalPushes(current.state, p) {
			next := push.Next
			key := next.Key()
			if closed[key] {
				continue
			}
			// Prune on precomputed squares only: a box hemmed in by
			// other boxes may free up later, so the dynamic checks
			// cannot be applied per push without losing solutions.
			if onDeadlockSquare(next, p) {
				continue
			}

			newG := current.g + 1

			if core.IsGoal(next, p) {
				goal := &searchNode{dir: push.Dir, parent: current}
				return done(Result{
					Success:        true,
					Solution:       reconstructSolution(goal),
					Optimal:        true,
					StatesExplored: explored,
				})
			}

			if g, seen := bestG[key]; seen && newG >= g {
				continue
			}
			h, ok := table.Heuristic(next.Boxes)
			if !ok {
				// Provably unsolvable from here, never enters the frontier.
				continue
			}
			bestG[key] = newG
			seq++
			heap.Push(open, &searchNode{
				state:  next,
				key:    key,
				g:      newG,
				f:      newG + h,
				seq:    seq,
				dir:    push.Dir,
				parent: current,
			})
		}
	}

	return done(Result{
		Reason:         ReasonUnsolvable,
		Err:            "no solution exists",
		StatesExplored: explored,
	})
}
