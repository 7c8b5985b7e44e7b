package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/ai"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/config"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/engine"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/store"
)

type server struct {
	cfg config.ServerConfig
	st  *store.Store

	mu     sync.Mutex
	tables map[string]*tableSession
}

type tableSession struct {
	mu     sync.Mutex
	id     string
	name   string
	engine *engine.Engine
}

func newServer(cfg config.ServerConfig, st *store.Store) *server {
	return &server{cfg: cfg, st: st, tables: map[string]*tableSession{}}
}

func (s *server) router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Post("/tables", s.handleCreateTable)
		r.Get("/tables/{table_id}", s.handleGetTable)
		r.Post("/tables/{table_id}/hands", s.handlePlayHand)
		r.Get("/hands/{hand_id}", s.handleGetHand)
	})
	return r
}

func apiLogMiddleware() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})),
		&httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
		},
	)
}

type createTableRequest struct {
	Name       string              `json:"name"`
	SmallBlind int64               `json:"small_blind"`
	BigBlind   int64               `json:"big_blind"`
	FixedLimit bool                `json:"fixed_limit"`
	Players    []seatPlayerRequest `json:"players"`
}

type seatPlayerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stack int64  `json:"stack"`
	Style string `json:"style"`
}

type tableResponse struct {
	TableID    string           `json:"table_id"`
	Name       string           `json:"name"`
	SmallBlind int64            `json:"small_blind"`
	BigBlind   int64            `json:"big_blind"`
	FixedLimit bool             `json:"fixed_limit"`
	Players    []playerResponse `json:"players"`
}

type playerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Seat  int    `json:"seat"`
	Stack int64  `json:"stack"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.st != nil {
		if err := s.st.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "db unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var req createTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Players) < 2 || len(req.Players) > game.MaxSeats {
		writeError(w, http.StatusBadRequest, "need between 2 and 9 players")
		return
	}
	if req.SmallBlind <= 0 {
		req.SmallBlind = s.cfg.DefaultSmallBlind
	}
	if req.BigBlind <= 0 {
		req.BigBlind = s.cfg.DefaultBigBlind
	}

	tableID := uuid.NewString()
	if s.st != nil {
		id, err := s.st.CreateTable(r.Context(), req.Name, req.SmallBlind, req.BigBlind, req.FixedLimit)
		if err != nil {
			log.Error().Err(err).Msg("create table failed")
			writeError(w, http.StatusInternalServerError, "create table failed")
			return
		}
		tableID = id
	}

	eng := engine.New(engine.Config{
		TableID:    tableID,
		SmallBlind: req.SmallBlind,
		BigBlind:   req.BigBlind,
		FixedLimit: req.FixedLimit,
	}, rand.New(rand.NewSource(time.Now().UnixNano())), recorderOrNil(s.st), log.Logger)

	for _, sp := range req.Players {
		if sp.Stack <= 0 {
			writeError(w, http.StatusBadRequest, "player stack must be positive")
			return
		}
		id := sp.ID
		if id == "" {
			id = uuid.NewString()
		}
		p := game.NewPlayer(id, sp.Name, sp.Stack)
		d := ai.New(ai.Style(sp.Style), rand.New(rand.NewSource(time.Now().UnixNano())))
		if err := eng.Sit(p, d); err != nil {
			writeError(w, http.StatusBadRequest, "table full")
			return
		}
	}

	sess := &tableSession{id: tableID, name: req.Name, engine: eng}
	s.mu.Lock()
	s.tables[tableID] = sess
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, sess.snapshot(req.SmallBlind, req.BigBlind, req.FixedLimit))
}

func (s *server) handleGetTable(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(chi.URLParam(r, "table_id"))
	if sess == nil {
		writeError(w, http.StatusNotFound, "table not found")
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, sess.snapshot(0, 0, false))
}

func (s *server) handlePlayHand(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(chi.URLParam(r, "table_id"))
	if sess == nil {
		writeError(w, http.StatusNotFound, "table not found")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Busted seats leave before the next hand.
	for _, p := range sess.engine.Table().Players() {
		if p.Stack <= 0 {
			sess.engine.Table().Remove(p.Seat)
		}
	}

	result, err := sess.engine.PlayHand(r.Context())
	if err != nil {
		if errors.Is(err, engine.ErrNotEnoughPlayers) {
			writeError(w, http.StatusConflict, "not enough funded players")
			return
		}
		log.Error().Err(err).Str("table_id", sess.id).Msg("play hand failed")
		writeError(w, http.StatusInternalServerError, "play hand failed")
		return
	}

	board := make([]string, 0, len(result.Board))
	for _, c := range result.Board {
		board = append(board, c.String())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hand_id":   result.HandID,
		"board":     board,
		"pot_total": result.PotTotal,
		"winnings":  result.Winnings,
		"actions":   result.Actions,
	})
}

func (s *server) handleGetHand(w http.ResponseWriter, r *http.Request) {
	if s.st == nil {
		writeError(w, http.StatusNotFound, "hand history disabled")
		return
	}
	handID := chi.URLParam(r, "hand_id")
	hand, err := s.st.GetHand(r.Context(), handID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "hand not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	actions, err := s.st.HandActions(r.Context(), handID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	results, err := s.st.HandResults(r.Context(), handID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hand":    hand,
		"actions": actions,
		"results": results,
	})
}

func (s *server) lookup(id string) *tableSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables[id]
}

func (ts *tableSession) snapshot(sb, bb int64, fixedLimit bool) tableResponse {
	resp := tableResponse{
		TableID:    ts.id,
		Name:       ts.name,
		SmallBlind: sb,
		BigBlind:   bb,
		FixedLimit: fixedLimit,
	}
	for _, p := range ts.engine.Table().Players() {
		resp.Players = append(resp.Players, playerResponse{
			ID:    p.ID,
			Name:  p.Name,
			Seat:  p.Seat,
			Stack: p.Stack,
		})
	}
	return resp
}

// recorderOrNil keeps the engine's recorder a typed nil-free interface.
func recorderOrNil(st *store.Store) engine.HandRecorder {
	if st == nil {
		return nil
	}
	return st
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
