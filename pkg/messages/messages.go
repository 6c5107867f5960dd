package messages

import (
	"github.com/kmansel/greenwords/pkg/game"
)

// GameState is the nested state object inside a GameData payload: the board
// seed plus every event issued so far, oldest first.
type GameState struct {
	Seed   int64        `json:"seed"`
	Events []game.Event `json:"events"`
}

// GameData is the initial snapshot returned when creating or joining a game.
type GameData struct {
	State     GameState    `json:"state"`
	Words     []string     `json:"words"`
	OneLayout []game.Color `json:"one_layout"`
	TwoLayout []game.Color `json:"two_layout"`
}

// Snapshot converts the wire payload into the core snapshot shape.
func (d *GameData) Snapshot() game.Snapshot {
	return game.Snapshot{
		Seed:      d.State.Seed,
		Words:     d.Words,
		Events:    d.State.Events,
		OneLayout: d.OneLayout,
		TwoLayout: d.TwoLayout,
	}
}

// Update is an incremental batch of events newer than the watermark the
// client reported.
type Update struct {
	Seed   int64        `json:"seed"`
	Events []game.Event `json:"events"`
}

// NewGameRequest asks the server to create a game, or return the existing one
// with that id.
type NewGameRequest struct {
	GameID string `json:"game_id"`
}

// GuessRequest is an outbound word tap. LastEvent is the highest event number
// the client has already applied; the server responds with everything newer.
type GuessRequest struct {
	GameID    string    `json:"game_id"`
	Index     int       `json:"index"`
	PlayerID  string    `json:"player_id"`
	Side      game.Side `json:"team"`
	LastEvent int       `json:"last_event"`
}

// EventsRequest polls for events newer than LastEvent. PlayerID and Side let
// the server track the roster: an unseen player produces a new_player event, a
// changed side a set_team event.
type EventsRequest struct {
	GameID    string    `json:"game_id"`
	PlayerID  string    `json:"player_id"`
	Side      game.Side `json:"team"`
	LastEvent int       `json:"last_event"`
}
