package server

import (
	"testing"
	"time"

	"github.com/kmansel/greenwords/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameTouchPlayer(t *testing.T) {
	g := newGame("g1")
	ttl := time.Minute

	g.TouchPlayer("p1", game.SideOne, ttl)
	update := g.Update(0)
	require.Len(t, update.Events, 1)
	assert.Equal(t, game.Event{Number: 1, Type: game.EventTypeNewPlayer, PlayerID: "p1", Side: game.SideOne}, update.Events[0])

	// Same side again: no new event.
	g.TouchPlayer("p1", game.SideOne, ttl)
	assert.Len(t, g.Update(0).Events, 1)

	// Side change issues set_team.
	g.TouchPlayer("p1", game.SideTwo, ttl)
	update = g.Update(1)
	require.Len(t, update.Events, 1)
	assert.Equal(t, game.EventTypeSetTeam, update.Events[0].Type)
	assert.Equal(t, game.SideTwo, update.Events[0].Side)
}

func TestGameSweepsInactivePlayers(t *testing.T) {
	g := newGame("g1")

	g.TouchPlayer("idle", game.SideTwo, time.Minute)
	g.players["idle"].lastSeen = time.Now().Add(-time.Hour)

	g.TouchPlayer("p1", game.SideOne, time.Minute)

	events := g.Update(0).Events
	require.Len(t, events, 3)
	assert.Equal(t, game.EventTypePlayerLeft, events[2].Type)
	assert.Equal(t, "idle", events[2].PlayerID)
	_, ok := g.players["idle"]
	assert.False(t, ok)
}

func TestGameGuess(t *testing.T) {
	g := newGame("g1")
	ttl := time.Minute

	update := g.Guess("p1", game.SideOne, 7, 0, ttl)
	// new_player for the unseen guesser, then the guess itself.
	require.Len(t, update.Events, 2)
	assert.Equal(t, game.EventTypeNewPlayer, update.Events[0].Type)
	guess := update.Events[1]
	assert.Equal(t, game.EventTypeGuess, guess.Type)
	assert.Equal(t, 7, guess.Index)
	assert.Equal(t, 2, guess.Number)

	// The watermark filters already-seen events.
	update = g.Guess("p1", game.SideOne, 8, 2, ttl)
	require.Len(t, update.Events, 1)
	assert.Equal(t, 3, update.Events[0].Number)
	assert.Equal(t, 8, update.Events[0].Index)
}

func TestGameDataSnapshot(t *testing.T) {
	g := newGame("g1")
	g.TouchPlayer("p1", game.SideOne, time.Minute)

	data := g.GameData()
	assert.Equal(t, g.seed, data.State.Seed)
	assert.Len(t, data.Words, game.BoardSize)
	assert.Len(t, data.OneLayout, game.BoardSize)
	assert.Len(t, data.TwoLayout, game.BoardSize)
	require.Len(t, data.State.Events, 1)

	// The snapshot events are a copy, not the live log.
	data.State.Events[0].PlayerID = "tampered"
	assert.Equal(t, "p1", g.Update(0).Events[0].PlayerID)
}
