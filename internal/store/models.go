package store

import "time"

type Table struct {
	ID         string
	Name       string
	SmallBlind int64
	BigBlind   int64
	FixedLimit bool
	CreatedAt  time.Time
}

type Hand struct {
	ID        string
	TableID   string
	StartedAt time.Time
	EndedAt   *time.Time
}

type HandAction struct {
	ID         int64
	HandID     string
	PlayerID   string
	Street     string
	ActionType string
	Amount     int64
	CreatedAt  time.Time
}

type HandResult struct {
	HandID   string
	PlayerID string
	Amount   int64
}
