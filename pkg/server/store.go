package server

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// Store is a bounded in-memory collection of game instances. Old games fall
// out least-recently-used once the bound is reached; there is no durable
// persistence.
type Store struct {
	mu    sync.Mutex
	games *lru.Cache
}

// NewStore creates a store bounded to maxGames instances.
func NewStore(maxGames int) (*Store, error) {
	games, err := lru.New(maxGames)
	if err != nil {
		return nil, fmt.Errorf("failed to create game cache: %v", err)
	}
	return &Store{games: games}, nil
}

// GetOrCreate returns the game with the given id, creating it with a fresh
// board if it does not exist.
func (s *Store) GetOrCreate(id string) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.games.Get(id); ok {
		return g.(*Game)
	}
	g := newGame(id)
	s.games.Add(id, g)
	return g
}

// Get returns the game with the given id, if it exists.
func (s *Store) Get(id string) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.games.Get(id); ok {
		return g.(*Game), true
	}
	return nil, false
}

// Len returns the number of games currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games.Len()
}
