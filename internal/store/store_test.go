package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/store"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/testutil"
)

func TestTableRoundTrip(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	id, err := st.CreateTable(ctx, "main", 5, 10, false)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	tbl, err := st.GetTable(ctx, id)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	if tbl.Name != "main" || tbl.SmallBlind != 5 || tbl.BigBlind != 10 || tbl.FixedLimit {
		t.Fatalf("unexpected table: %+v", tbl)
	}

	if _, err := st.GetTable(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHandLifecycle(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tableID, err := st.CreateTable(ctx, "main", 5, 10, true)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	handID, err := st.CreateHand(ctx, tableID)
	if err != nil {
		t.Fatalf("create hand: %v", err)
	}

	hand, err := st.GetHand(ctx, handID)
	if err != nil {
		t.Fatalf("get hand: %v", err)
	}
	if hand.TableID != tableID || hand.EndedAt != nil {
		t.Fatalf("unexpected open hand: %+v", hand)
	}

	if err := st.RecordAction(ctx, handID, "p1", "preflop", "raise", 40); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := st.RecordAction(ctx, handID, "p2", "preflop", "call", 40); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := st.RecordResult(ctx, handID, "p1", 80); err != nil {
		t.Fatalf("record result: %v", err)
	}
	if err := st.EndHand(ctx, handID); err != nil {
		t.Fatalf("end hand: %v", err)
	}

	hand, err = st.GetHand(ctx, handID)
	if err != nil {
		t.Fatalf("get ended hand: %v", err)
	}
	if hand.EndedAt == nil {
		t.Fatalf("expected ended_at to be set")
	}

	actions, err := st.HandActions(ctx, handID)
	if err != nil {
		t.Fatalf("hand actions: %v", err)
	}
	if len(actions) != 2 || actions[0].ActionType != "raise" || actions[1].Amount != 40 {
		t.Fatalf("unexpected actions: %+v", actions)
	}

	results, err := st.HandResults(ctx, handID)
	if err != nil {
		t.Fatalf("hand results: %v", err)
	}
	if len(results) != 1 || results[0].PlayerID != "p1" || results[0].Amount != 80 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestGetHandNotFound(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	if _, err := st.GetHand(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
