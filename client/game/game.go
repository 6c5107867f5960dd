package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kmansel/greenwords/client/network"
	game "github.com/kmansel/greenwords/pkg/game"
	"github.com/kmansel/greenwords/pkg/messages"
	"go.uber.org/zap"
)

const DefaultPollInterval = 2 * time.Second

// Game owns the local session value and drives it through the reducer: once
// at join, once per poll response, and once per guess response. The session
// itself is copy-on-write; the mutex only guards the pointer swap between the
// poll goroutine and the caller.
type Game struct {
	logger       *zap.SugaredLogger
	network      *network.Client
	pollInterval time.Duration

	mu          sync.RWMutex
	session     *game.Session
	desiredSide game.Side
}

type NewGameOptions struct {
	Logger       *zap.SugaredLogger
	Network      *network.Client
	PollInterval time.Duration
}

func NewGame(opts NewGameOptions) *Game {
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Game{
		logger:       opts.Logger,
		network:      opts.Network,
		pollInterval: pollInterval,
	}
}

// Join fetches the snapshot for the given game id and builds the session.
func (g *Game) Join(ctx context.Context, gameID, playerID string) error {
	data, err := g.network.NewGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to fetch game: %v", err)
	}

	session := game.NewSession(gameID, data.Snapshot(), playerID)

	g.mu.Lock()
	g.session = session
	g.desiredSide = session.Player.Side
	g.mu.Unlock()

	g.logger.Infow("joined game", "game_id", gameID, "seed", session.Seed, "events", len(session.Events))
	return nil
}

// Session returns the current session value. Sessions are replaced wholesale
// on every reconciliation, never mutated, so the returned value is safe to
// read and compare against later values.
func (g *Game) Session() *game.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// SetSide records which team the player wants to be on. The roster itself
// only changes when the server issues the matching set_team event and it is
// folded back in.
func (g *Game) SetSide(side game.Side) {
	g.mu.Lock()
	g.desiredSide = side
	g.mu.Unlock()
}

// WordPicked decides whether tapping the given cell should go out as a guess.
// A guess is emitted only when the player is on a team and the cell is not
// already exposed from the opposing side's perspective; a cell the player's
// own side has exposed stays eligible, the server is the final arbiter. The
// session is not touched.
func (g *Game) WordPicked(index int) (*messages.GuessRequest, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := g.session
	if s == nil || s.Player.Side == game.SideNone {
		return nil, false
	}
	if index < 0 || index >= len(s.Cells) {
		return nil, false
	}
	if s.Cells[index].IsExposed(s.Player.Side.Opposite()) {
		return nil, false
	}

	return &messages.GuessRequest{
		GameID:    s.ID,
		Index:     index,
		PlayerID:  s.Player.ID,
		Side:      s.Player.Side,
		LastEvent: s.LastEventNumber(),
	}, true
}

// Guess submits a tap on the given cell. State changes only by folding the
// server's response; a blocked tap returns ErrGuessBlocked.
func (g *Game) Guess(ctx context.Context, index int) error {
	req, ok := g.WordPicked(index)
	if !ok {
		return ErrGuessBlocked
	}

	update, err := g.network.Guess(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to submit guess: %v", err)
	}

	g.apply(update)
	return nil
}

// Start runs the background poll loop until the context is cancelled.
func (g *Game) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(g.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := g.poll(ctx); err != nil {
					g.logger.Warnw("poll failed", "error", err)
				}
			}
		}
	}()
}

func (g *Game) poll(ctx context.Context) error {
	g.mu.RLock()
	s := g.session
	side := g.desiredSide
	g.mu.RUnlock()
	if s == nil {
		return nil
	}

	update, err := g.network.Events(ctx, &messages.EventsRequest{
		GameID:    s.ID,
		PlayerID:  s.Player.ID,
		Side:      side,
		LastEvent: s.LastEventNumber(),
	})
	if err != nil {
		return err
	}

	g.apply(update)
	return nil
}

func (g *Game) apply(update *messages.Update) {
	g.mu.Lock()
	next, result := g.session.Reconcile(update.Seed, update.Events)
	g.session = next
	g.mu.Unlock()

	switch result {
	case game.ReconcileApplied:
		g.logger.Debugw("applied update", "events", len(update.Events), "last_event", next.LastEventNumber())
	case game.ReconcileStaleSeed:
		g.logger.Warnw("dropped update for a different game instance", "session_seed", next.Seed, "update_seed", update.Seed)
	}
}
