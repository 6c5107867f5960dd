package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kmansel/greenwords/pkg/game"
	"github.com/kmansel/greenwords/pkg/messages"
	"go.uber.org/zap"
)

const (
	DefaultMaxGames  = 1024
	DefaultPlayerTTL = 30 * time.Second
)

// Server is the in-memory reference game server: it generates boards,
// arbitrates guesses by appending events, and answers incremental event
// queries filtered by the client's watermark.
type Server struct {
	logger    *zap.SugaredLogger
	store     *Store
	playerTTL time.Duration
}

type NewServerOptions struct {
	Logger    *zap.SugaredLogger
	MaxGames  int
	PlayerTTL time.Duration
}

func NewServer(opts NewServerOptions) (*Server, error) {
	maxGames := opts.MaxGames
	if maxGames <= 0 {
		maxGames = DefaultMaxGames
	}
	playerTTL := opts.PlayerTTL
	if playerTTL <= 0 {
		playerTTL = DefaultPlayerTTL
	}

	store, err := NewStore(maxGames)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %v", err)
	}
	return &Server{
		logger:    opts.Logger,
		store:     store,
		playerTTL: playerTTL,
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/new-game", s.handleNewGame).Methods(http.MethodPost)
	r.HandleFunc("/api/guess", s.handleGuess).Methods(http.MethodPost)
	r.HandleFunc("/api/events", s.handleEvents).Methods(http.MethodPost)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	return r
}

// Start serves HTTP on addr until the context is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.ListenAndServe()
	}()

	s.logger.Infow("server listening", "addr", addr)

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to serve: %v", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	req := &messages.NewGameRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.GameID == "" {
		req.GameID = uuid.New().String()
	}

	g := s.store.GetOrCreate(req.GameID)
	s.logger.Infow("game requested", "game_id", req.GameID, "seed", g.seed)
	s.writeJSON(w, g.GameData())
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	req := &messages.GuessRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		s.writeError(w, http.StatusBadRequest, "player_id required")
		return
	}
	if req.Side == game.SideNone {
		s.writeError(w, http.StatusBadRequest, "spectators cannot guess")
		return
	}

	g, ok := s.store.Get(req.GameID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	s.writeJSON(w, g.Guess(req.PlayerID, req.Side, req.Index, req.LastEvent, s.playerTTL))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	req := &messages.EventsRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, ok := s.store.Get(req.GameID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "game not found")
		return
	}

	if req.PlayerID != "" {
		g.TouchPlayer(req.PlayerID, req.Side, s.playerTTL)
	}
	s.writeJSON(w, g.Update(req.LastEvent))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorw("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		s.logger.Errorw("failed to write error response", "error", err)
	}
}
