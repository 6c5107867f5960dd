package game

// Event types
const (
	EventTypeNewPlayer  = "new_player"
	EventTypePlayerLeft = "player_left"
	EventTypeSetTeam    = "set_team"
	EventTypeGuess      = "guess"
)

// Event is an immutable, numbered fact issued by the server. Numbers increase
// monotonically per game; the event log is the sole source of truth for
// reconstructing session state.
type Event struct {
	Number   int    `json:"number"`
	Type     string `json:"type"`
	PlayerID string `json:"player_id"`
	Side     Side   `json:"team"`
	// Index references a cell and is only meaningful for guess events.
	Index int `json:"index"`
}

// ApplyEvent folds a single event into the session and returns the resulting
// session. The receiver is not modified. The fold is total: unknown event
// types and out-of-range cell indexes produce no side effect, but every event
// is recorded in the log regardless.
//
// The local player's side is deliberately not recomputed here; callers
// recompute it once after folding a whole batch (see Reconcile).
func (s *Session) ApplyEvent(e Event) *Session {
	next := s.Copy()
	switch e.Type {
	case EventTypeNewPlayer, EventTypeSetTeam:
		next.Players[e.PlayerID] = e.Side
	case EventTypePlayerLeft:
		delete(next.Players, e.PlayerID)
	case EventTypeGuess:
		if e.Index >= 0 && e.Index < len(next.Cells) {
			next.Cells[e.Index] = next.Cells[e.Index].Tapped(e.Side)
		}
	}
	next.Events = append([]Event{e}, next.Events...)
	return next
}
