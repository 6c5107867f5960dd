package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSnapshot builds a 25-word board with 15 distinct greens: cells 0-8 are
// green for side one, 6-14 for side two, cell 20 is side one's black and cell
// 21 side two's.
func testSnapshot(seed int64, events []Event) Snapshot {
	words := make([]string, BoardSize)
	one := make([]Color, BoardSize)
	two := make([]Color, BoardSize)
	for i := range words {
		words[i] = fmt.Sprintf("word-%d", i)
		one[i] = ColorTan
		two[i] = ColorTan
		if i <= 8 {
			one[i] = ColorGreen
		}
		if i >= 6 && i <= 14 {
			two[i] = ColorGreen
		}
	}
	one[20] = ColorBlack
	two[21] = ColorBlack
	return Snapshot{Seed: seed, Words: words, Events: events, OneLayout: one, TwoLayout: two}
}

func TestApplyEvent(t *testing.T) {
	tests := []struct {
		name       string
		events     []Event
		wantSide   map[string]Side
		wantTapped []int
	}{
		{
			name:     "new player joins roster",
			events:   []Event{{Number: 1, Type: EventTypeNewPlayer, PlayerID: "p1", Side: SideOne}},
			wantSide: map[string]Side{"p1": SideOne},
		},
		{
			name: "set team overwrites, last write wins",
			events: []Event{
				{Number: 1, Type: EventTypeNewPlayer, PlayerID: "p1", Side: SideOne},
				{Number: 2, Type: EventTypeSetTeam, PlayerID: "p1", Side: SideTwo},
			},
			wantSide: map[string]Side{"p1": SideTwo},
		},
		{
			name: "player left removes roster entry",
			events: []Event{
				{Number: 1, Type: EventTypeNewPlayer, PlayerID: "p1", Side: SideOne},
				{Number: 2, Type: EventTypePlayerLeft, PlayerID: "p1", Side: SideOne},
			},
			wantSide: map[string]Side{},
		},
		{
			name:       "guess taps the referenced cell",
			events:     []Event{{Number: 1, Type: EventTypeGuess, PlayerID: "p1", Side: SideOne, Index: 4}},
			wantSide:   map[string]Side{},
			wantTapped: []int{4},
		},
		{
			name:     "out of range guess is recorded without touching cells",
			events:   []Event{{Number: 1, Type: EventTypeGuess, PlayerID: "p1", Side: SideOne, Index: 999}},
			wantSide: map[string]Side{},
		},
		{
			name:     "negative index guess is recorded without touching cells",
			events:   []Event{{Number: 1, Type: EventTypeGuess, PlayerID: "p1", Side: SideTwo, Index: -1}},
			wantSide: map[string]Side{},
		},
		{
			name:     "unknown event type is recorded with no side effect",
			events:   []Event{{Number: 1, Type: "spectate", PlayerID: "p1", Side: SideOne, Index: 2}},
			wantSide: map[string]Side{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("g1", testSnapshot(7, nil), "local")
			before := s.Copy()

			for _, e := range tt.events {
				s = s.ApplyEvent(e)
			}

			assert.Equal(t, tt.wantSide, s.Players)
			require.Len(t, s.Events, len(tt.events))
			// The log is most recent first.
			assert.Equal(t, tt.events[len(tt.events)-1], s.Events[0])

			tapped := map[int]bool{}
			for _, i := range tt.wantTapped {
				tapped[i] = true
			}
			for i, c := range s.Cells {
				assert.Equal(t, tapped[i], c.OneExposed || c.TwoExposed, "cell %d", i)
			}

			// The input session is never mutated.
			assert.True(t, before.Equal(NewSession("g1", testSnapshot(7, nil), "local")))
		})
	}
}

func TestApplyEventDoesNotRecomputeLocalSide(t *testing.T) {
	s := NewSession("g1", testSnapshot(7, nil), "local")
	s = s.ApplyEvent(Event{Number: 1, Type: EventTypeNewPlayer, PlayerID: "local", Side: SideTwo})

	assert.Equal(t, SideTwo, s.Players["local"])
	assert.Equal(t, SideNone, s.Player.Side)
}
