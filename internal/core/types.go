// Package core defines the Sokoban domain model: grid positions, the
// immutable puzzle layout, and the dynamic search state.
package core

import "sort"

// Pos is a grid coordinate. X grows rightward, Y grows downward.
type Pos struct {
	X, Y int
}

// Direction is one of the four orthogonal push directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var dirDeltas = [...]Pos{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

var dirRunes = [...]byte{Up: 'U', Down: 'D', Left: 'L', Right: 'R'}

// Directions lists all directions in the fixed enumeration order U, D, L, R.
// Move generation iterates this order so searches are reproducible.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Pos {
	return dirDeltas[d]
}

func (d Direction) String() string {
	return string(dirRunes[d])
}

// Rune returns the solution-string character for the direction.
func (d Direction) Rune() byte {
	return dirRunes[d]
}

// DirectionFromRune maps a solution-string character back to a Direction.
func DirectionFromRune(r byte) (Direction, bool) {
	switch r {
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	}
	return 0, false
}

// Add offsets a position by another.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.X + d.X, p.Y + d.Y}
}

// Sub offsets a position by the negation of another.
func (p Pos) Sub(d Pos) Pos {
	return Pos{p.X - d.X, p.Y - d.Y}
}

// Puzzle holds the immutable facts of a level: walls, goals, bounds, and
// the precomputed squares from which a box can never reach any goal.
type Puzzle struct {
	Walls  map[Pos]bool
	Goals  map[Pos]bool
	Width  int
	Height int
	// DeadlockSquares are non-goal squares where a pushed box is stuck
	// forever. Computed once at load time, independent of box layout.
	DeadlockSquares map[Pos]bool
}

// InBounds reports whether pos lies inside the grid.
func (p *Puzzle) InBounds(pos Pos) bool {
	return pos.X >= 0 && pos.X < p.Width && pos.Y >= 0 && pos.Y < p.Height
}

// State is a search node: the player position plus the box configuration.
// Boxes are kept sorted (Y then X) so two states with the same box set
// compare equal regardless of the push order that produced them.
type State struct {
	Player Pos
	Boxes  []Pos
}

// NewState builds a canonical State from a player position and box set.
// The box slice is copied and sorted; the caller keeps ownership of boxes.
func NewState(player Pos, boxes []Pos) State {
	bs := make([]Pos, len(boxes))
	copy(bs, boxes)
	sortBoxes(bs)
	return State{Player: player, Boxes: bs}
}

func sortBoxes(bs []Pos) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].Y != bs[j].Y {
			return bs[i].Y < bs[j].Y
		}
		return bs[i].X < bs[j].X
	})
}

// HasBox reports whether a box occupies pos.
func (s State) HasBox(pos Pos) bool {
	i := sort.Search(len(s.Boxes), func(i int) bool {
		b := s.Boxes[i]
		return b.Y > pos.Y || (b.Y == pos.Y && b.X >= pos.X)
	})
	return i < len(s.Boxes) && s.Boxes[i] == pos
}

// WithPush returns the state after pushing the box at from to to. The
// player ends up on the box's old square. The receiver is not modified.
func (s State) WithPush(from, to Pos) State {
	bs := make([]Pos, len(s.Boxes))
	copy(bs, s.Boxes)
	for i, b := range bs {
		if b == from {
			bs[i] = to
			break
		}
	}
	sortBoxes(bs)
	return State{Player: from, Boxes: bs}
}

// Key returns a compact byte-packed identity for the state, suitable as a
// map key. Two states with equal player position and box set always
// produce the same key because Boxes is canonically sorted.
func (s State) Key() string {
	b := make([]byte, 0, 4+4*len(s.Boxes))
	b = appendPos(b, s.Player)
	for _, box := range s.Boxes {
		b = appendPos(b, box)
	}
	return string(b)
}

func appendPos(b []byte, p Pos) []byte {
	return append(b, byte(p.X), byte(p.X>>8), byte(p.Y), byte(p.Y>>8))
}

// IsGoal reports whether every box sits on a goal. Box and goal counts are
// equal by parser invariant, so set equality reduces to membership.
func IsGoal(s State, p *Puzzle) bool {
	for _, box := range s.Boxes {
		if !p.Goals[box] {
			return false
		}
	}
	return true
}
