package server

import (
	"sync"
	"time"

	"github.com/kmansel/greenwords/pkg/game"
	"github.com/kmansel/greenwords/pkg/messages"
)

// Game is one server-side game instance: the generated board plus the
// append-only event log. Event numbers start at 1 and increase monotonically;
// events are never mutated or removed.
type Game struct {
	mu        sync.Mutex
	id        string
	seed      int64
	words     []string
	oneLayout []game.Color
	twoLayout []game.Color
	events    []game.Event
	players   map[string]*playerState
}

type playerState struct {
	side     game.Side
	lastSeen time.Time
}

func newGame(id string) *Game {
	seed := NewSeed()
	boardWords, one, two := GenerateBoard(seed)
	return &Game{
		id:        id,
		seed:      seed,
		words:     boardWords,
		oneLayout: one,
		twoLayout: two,
		players:   make(map[string]*playerState),
	}
}

// GameData returns the full snapshot for joining clients.
func (g *Game) GameData() *messages.GameData {
	g.mu.Lock()
	defer g.mu.Unlock()

	events := make([]game.Event, len(g.events))
	copy(events, g.events)
	return &messages.GameData{
		State:     messages.GameState{Seed: g.seed, Events: events},
		Words:     g.words,
		OneLayout: g.oneLayout,
		TwoLayout: g.twoLayout,
	}
}

// Update returns the events numbered after the client's watermark.
func (g *Game) Update(lastEvent int) *messages.Update {
	g.mu.Lock()
	defer g.mu.Unlock()
	return &messages.Update{Seed: g.seed, Events: g.eventsSinceLocked(lastEvent)}
}

func (g *Game) eventsSinceLocked(lastEvent int) []game.Event {
	newer := []game.Event{}
	for _, e := range g.events {
		if e.Number > lastEvent {
			newer = append(newer, e)
		}
	}
	return newer
}

func (g *Game) appendEventLocked(typ, playerID string, side game.Side, index int) {
	g.events = append(g.events, game.Event{
		Number:   len(g.events) + 1,
		Type:     typ,
		PlayerID: playerID,
		Side:     side,
		Index:    index,
	})
}

// TouchPlayer records that a player was seen with the given side, issuing
// new_player and set_team events as the roster changes, and sweeps out
// players not seen within ttl.
func (g *Game) TouchPlayer(playerID string, side game.Side, ttl time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touchPlayerLocked(playerID, side, ttl)
}

func (g *Game) touchPlayerLocked(playerID string, side game.Side, ttl time.Duration) {
	now := time.Now()

	p, ok := g.players[playerID]
	switch {
	case !ok:
		g.players[playerID] = &playerState{side: side, lastSeen: now}
		g.appendEventLocked(game.EventTypeNewPlayer, playerID, side, 0)
	case p.side != side:
		p.side = side
		p.lastSeen = now
		g.appendEventLocked(game.EventTypeSetTeam, playerID, side, 0)
	default:
		p.lastSeen = now
	}

	for id, other := range g.players {
		if id == playerID || now.Sub(other.lastSeen) < ttl {
			continue
		}
		g.appendEventLocked(game.EventTypePlayerLeft, id, other.side, 0)
		delete(g.players, id)
	}
}

// Guess records a word tap and returns the events newer than the client's
// watermark, the guess included.
func (g *Game) Guess(playerID string, side game.Side, index, lastEvent int, ttl time.Duration) *messages.Update {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.touchPlayerLocked(playerID, side, ttl)
	g.appendEventLocked(game.EventTypeGuess, playerID, side, index)
	return &messages.Update{Seed: g.seed, Events: g.eventsSinceLocked(lastEvent)}
}
