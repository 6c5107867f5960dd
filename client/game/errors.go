package game

import "errors"

// ErrGuessBlocked is returned when a tap fails the local gating rules: the
// player has no team, the index is out of range, or the opposing side has
// already exposed the cell.
var ErrGuessBlocked = errors.New("guess blocked")
