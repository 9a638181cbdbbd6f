package core

import "errors"

// Sentinel errors for puzzle construction and replay. Callers match with
// errors.Is; specific causes are wrapped around these.
var (
	// ErrInvalidPuzzle covers every structural defect detected before
	// search: empty grid, missing player, missing boxes or goals, and
	// box/goal count mismatch.
	ErrInvalidPuzzle = errors.New("sokoban: invalid puzzle")

	// ErrIllegalPush is returned by ApplyPush when no box admits the
	// requested push from the current state. This indicates a corrupted
	// solution string or a mismatched puzzle, never a puzzle property.
	ErrIllegalPush = errors.New("sokoban: illegal push")
)
