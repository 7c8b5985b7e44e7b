// Package store persists hand histories to Postgres. It only ever consumes
// the engine's terminal outputs; no rules-of-poker logic lives here.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

// Store wraps DB access.
type Store struct {
	Pool *pgxpool.Pool
}

func New(dsn string) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Pool.Ping(ctx)
}

func (s *Store) CreateTable(ctx context.Context, name string, smallBlind, bigBlind int64, fixedLimit bool) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO tables (id, name, small_blind, big_blind, fixed_limit) VALUES ($1,$2,$3,$4,$5)`,
		id, name, smallBlind, bigBlind, fixedLimit)
	return id, err
}

func (s *Store) GetTable(ctx context.Context, id string) (*Table, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, name, small_blind, big_blind, fixed_limit, created_at FROM tables WHERE id = $1`, id)
	var t Table
	if err := row.Scan(&t.ID, &t.Name, &t.SmallBlind, &t.BigBlind, &t.FixedLimit, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateHand(ctx context.Context, tableID string) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO hands (id, table_id) VALUES ($1,$2)`, id, tableID)
	return id, err
}

func (s *Store) EndHand(ctx context.Context, handID string) error {
	_, err := s.Pool.Exec(ctx, `UPDATE hands SET ended_at = now() WHERE id = $1`, handID)
	return err
}

func (s *Store) RecordAction(ctx context.Context, handID, playerID, street, action string, amount int64) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO actions (hand_id, player_id, street, action_type, amount) VALUES ($1,$2,$3,$4,$5)`,
		handID, playerID, street, action, amount)
	return err
}

func (s *Store) RecordResult(ctx context.Context, handID, playerID string, amount int64) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO results (hand_id, player_id, amount) VALUES ($1,$2,$3)`,
		handID, playerID, amount)
	return err
}

func (s *Store) GetHand(ctx context.Context, handID string) (*Hand, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, table_id, started_at, ended_at FROM hands WHERE id = $1`, handID)
	var h Hand
	if err := row.Scan(&h.ID, &h.TableID, &h.StartedAt, &h.EndedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (s *Store) HandActions(ctx context.Context, handID string) ([]HandAction, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, hand_id, player_id, street, action_type, amount, created_at
		 FROM actions WHERE hand_id = $1 ORDER BY id`, handID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HandAction
	for rows.Next() {
		var a HandAction
		if err := rows.Scan(&a.ID, &a.HandID, &a.PlayerID, &a.Street, &a.ActionType, &a.Amount, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) HandResults(ctx context.Context, handID string) ([]HandResult, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT hand_id, player_id, amount FROM results WHERE hand_id = $1 ORDER BY player_id`, handID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HandResult
	for rows.Next() {
		var r HandResult
		if err := rows.Scan(&r.HandID, &r.PlayerID, &r.Amount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
