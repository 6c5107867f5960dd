package game

const (
	// BoardSize is the number of cells on a generated board.
	BoardSize = 25
	// TotalGreenWords is the number of distinct green words across both
	// keycards. Tied to BoardSize and the keycard distribution, not derived
	// from the cell slice.
	TotalGreenWords = 15
)

// GameStatus is the derived win/loss state of a session.
type GameStatus int

const (
	StatusPlaying GameStatus = iota
	StatusWon
	StatusLost
)

func (s GameStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "unknown"
}

// Player is the local viewer's identity and current team.
type Player struct {
	ID   string `json:"id"`
	Side Side   `json:"side"`
}

// Snapshot is the initial state a session is constructed from: the board seed,
// the 25 words, both keycard layouts in board order, and the events issued so
// far, oldest first.
type Snapshot struct {
	Seed      int64
	Words     []string
	Events    []Event
	OneLayout []Color
	TwoLayout []Color
}

// Session is the aggregate game state. The roster and cells are caches
// derivable by replaying Events from an empty session; the reducer is the only
// mutation path. Every transition returns a new session value, so two
// references to the same session never observe different states.
type Session struct {
	ID   string
	Seed int64
	// Players maps player id to current side, last write wins.
	Players map[string]Side
	// Events is the full event history, most recent first.
	Events []Event
	Cells  []Cell
	Player Player
}

// NewSession builds a session from an initial snapshot. Cells are created by
// zipping words with the two layouts in board order, then every snapshot event
// is folded in delivered order. The local player's side comes from the
// resulting roster, SideNone if the player is not in it.
func NewSession(id string, snap Snapshot, playerID string) *Session {
	cells := make([]Cell, len(snap.Words))
	for i, word := range snap.Words {
		cells[i] = Cell{
			Index:    i,
			Word:     word,
			OneColor: layoutColor(snap.OneLayout, i),
			TwoColor: layoutColor(snap.TwoLayout, i),
		}
	}

	s := &Session{
		ID:      id,
		Seed:    snap.Seed,
		Players: make(map[string]Side),
		Events:  []Event{},
		Cells:   cells,
	}
	for _, e := range snap.Events {
		s = s.ApplyEvent(e)
	}
	s.Player = Player{ID: playerID, Side: s.Players[playerID]}
	return s
}

func layoutColor(layout []Color, i int) Color {
	if i < len(layout) {
		return layout[i]
	}
	return ColorTan
}

// RemainingGreen returns how many green words are still unexposed.
func (s *Session) RemainingGreen() int {
	remaining := TotalGreenWords
	for _, c := range s.Cells {
		if c.Display() == DisplayGreen {
			remaining--
		}
	}
	return remaining
}

// Status derives the win/loss state. Any exposed black cell loses the game
// regardless of how many greens remain.
func (s *Session) Status() GameStatus {
	for _, c := range s.Cells {
		if c.Display() == DisplayBlack {
			return StatusLost
		}
	}
	if s.RemainingGreen() <= 0 {
		return StatusWon
	}
	return StatusPlaying
}

// LastEventNumber returns the highest event number the session has applied,
// 0 if it has none. This is the watermark sent to the server so it can return
// only newer events.
func (s *Session) LastEventNumber() int {
	last := 0
	for _, e := range s.Events {
		if e.Number > last {
			last = e.Number
		}
	}
	return last
}

// Copy returns a deep copy of the session.
func (s *Session) Copy() *Session {
	players := make(map[string]Side, len(s.Players))
	for id, side := range s.Players {
		players[id] = side
	}
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	cells := make([]Cell, len(s.Cells))
	copy(cells, s.Cells)
	return &Session{
		ID:      s.ID,
		Seed:    s.Seed,
		Players: players,
		Events:  events,
		Cells:   cells,
		Player:  s.Player,
	}
}

// Equal reports structural equality of two sessions.
func (s *Session) Equal(other *Session) bool {
	if s.ID != other.ID || s.Seed != other.Seed || s.Player != other.Player {
		return false
	}
	if len(s.Players) != len(other.Players) || len(s.Events) != len(other.Events) || len(s.Cells) != len(other.Cells) {
		return false
	}
	for id, side := range s.Players {
		if otherSide, ok := other.Players[id]; !ok || otherSide != side {
			return false
		}
	}
	for i := range s.Events {
		if s.Events[i] != other.Events[i] {
			return false
		}
	}
	for i := range s.Cells {
		if s.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}
