// Package engine orchestrates one hand at a time: blinds, dealing, the four
// betting streets and the showdown. All rules live in internal/game; the
// engine wires them to decision sources, logging and persistence.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/ai"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

var ErrNotEnoughPlayers = errors.New("not enough players")

// HandRecorder consumes the terminal outputs of a hand. The engine works
// fine with a nil recorder; it never reads anything back.
type HandRecorder interface {
	CreateHand(ctx context.Context, tableID string) (string, error)
	RecordAction(ctx context.Context, handID, playerID, street, action string, amount int64) error
	RecordResult(ctx context.Context, handID, playerID string, amount int64) error
	EndHand(ctx context.Context, handID string) error
}

type Config struct {
	TableID    string
	SmallBlind int64
	BigBlind   int64
	FixedLimit bool
}

// ActionRecord is one entry of the per-hand action log.
type ActionRecord struct {
	PlayerID string          `json:"player_id"`
	Street   game.Street     `json:"street"`
	Action   game.ActionType `json:"action"`
	Amount   int64           `json:"amount"`
}

// HandResult is what the orchestrator hands to persistence and display.
type HandResult struct {
	HandID   string
	Board    []game.Card
	PotTotal int64
	Winnings map[string]int64
	Actions  []ActionRecord
}

type Engine struct {
	cfg      Config
	table    *game.Table
	pot      *game.Pot
	deck     *game.Deck
	rnd      *rand.Rand
	deciders map[*game.Player]ai.Decider
	recorder HandRecorder
	log      zerolog.Logger

	handID    string
	community []game.Card
	actions   []ActionRecord
}

func New(cfg Config, rnd *rand.Rand, recorder HandRecorder, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		table:    game.NewTable(),
		pot:      game.NewPot(),
		rnd:      rnd,
		deciders: map[*game.Player]ai.Decider{},
		recorder: recorder,
		log:      log,
	}
}

func (e *Engine) Table() *game.Table { return e.table }

func (e *Engine) Pot() *game.Pot { return e.pot }

func (e *Engine) Community() []game.Card {
	return append([]game.Card{}, e.community...)
}

// Sit seats a player together with their decision source.
func (e *Engine) Sit(p *game.Player, d ai.Decider) error {
	if err := e.table.Seat(p); err != nil {
		return err
	}
	e.deciders[p] = d
	return nil
}

// PlayHand runs a complete hand and settles it. Players with empty stacks
// are skipped by the blinds logic upstream; the caller removes busted seats
// between hands.
func (e *Engine) PlayHand(ctx context.Context) (*HandResult, error) {
	if err := e.startHand(ctx); err != nil {
		return nil, err
	}

	streets := []game.Street{game.StreetPreflop, game.StreetFlop, game.StreetTurn, game.StreetRiver}
	for _, street := range streets {
		if len(e.table.PlayersInHand()) <= 1 {
			break
		}
		e.dealBoard(street)
		if err := e.runStreet(ctx, street); err != nil {
			return nil, err
		}
	}

	// Everyone all-in early still gets a full board for the showdown.
	for len(e.table.PlayersInHand()) > 1 && len(e.community) < 5 {
		e.dealRemainingBoard()
	}

	return e.settle(ctx)
}

func (e *Engine) startHand(ctx context.Context) error {
	if len(e.table.Players()) < 2 {
		return ErrNotEnoughPlayers
	}

	e.pot.Reset()
	e.community = nil
	e.actions = nil
	for _, p := range e.table.Players() {
		p.ResetForHand()
	}
	e.table.MoveButton()

	e.handID = ""
	if e.recorder != nil {
		id, err := e.recorder.CreateHand(ctx, e.cfg.TableID)
		if err != nil {
			return fmt.Errorf("create hand: %w", err)
		}
		e.handID = id
	}

	e.deck = game.NewDeck()
	e.deck.Shuffle(e.rnd)

	if err := e.postBlinds(ctx); err != nil {
		return err
	}

	for _, p := range e.table.Players() {
		p.Hole = e.deck.DealN(2)
	}
	e.log.Debug().Str("hand_id", e.handID).Int("players", len(e.table.Players())).Msg("hand started")
	return nil
}

func (e *Engine) postBlinds(ctx context.Context) error {
	sb := e.table.OrderFrom(e.table.SmallBlindSeat())[0]
	bb := e.table.OrderFrom(e.table.BigBlindSeat())[0]

	// A short stack posts what it can and is all-in.
	posted := sb.RaiseTo(e.cfg.SmallBlind)
	if err := e.pot.Add(sb, posted); err != nil {
		return err
	}
	e.recordAction(ctx, sb, game.StreetPreflop, "small_blind", posted)

	posted = bb.RaiseTo(e.cfg.BigBlind)
	if err := e.pot.Add(bb, posted); err != nil {
		return err
	}
	e.recordAction(ctx, bb, game.StreetPreflop, "big_blind", posted)
	return nil
}

func (e *Engine) dealBoard(street game.Street) {
	switch street {
	case game.StreetFlop:
		e.deck.Burn()
		e.community = append(e.community, e.deck.DealN(3)...)
	case game.StreetTurn, game.StreetRiver:
		e.deck.Burn()
		e.community = append(e.community, e.deck.Deal())
	}
}

func (e *Engine) dealRemainingBoard() {
	switch len(e.community) {
	case 0:
		e.dealBoard(game.StreetFlop)
	case 3:
		e.dealBoard(game.StreetTurn)
	default:
		e.dealBoard(game.StreetRiver)
	}
}

func (e *Engine) runStreet(ctx context.Context, street game.Street) error {
	for _, p := range e.table.Players() {
		if street != game.StreetPreflop {
			p.ResetForStreet()
		}
	}

	round := game.NewRound(e.table, e.pot, street, e.cfg.BigBlind, e.cfg.FixedLimit)
	for p := round.Next(); p != nil; p = round.Next() {
		decider := e.deciders[p]
		if decider == nil {
			// An orphaned seat folds rather than stalling the hand.
			if _, _, err := round.Apply(p, game.Action{Type: game.ActionFold}); err != nil {
				return err
			}
			continue
		}
		req := decider.Decide(e.decisionContext(round, p))
		eff, paid, err := round.Apply(p, req)
		if err != nil {
			return err
		}
		e.recordAction(ctx, p, street, string(eff.Type), paid)
		e.log.Debug().
			Str("player", p.Name).
			Str("street", string(street)).
			Str("action", string(eff.Type)).
			Int64("paid", paid).
			Int64("pot", e.pot.Total()).
			Msg("action")
	}
	return nil
}

func (e *Engine) decisionContext(round *game.Round, p *game.Player) ai.DecisionContext {
	b := round.BoundsFor(p)
	return ai.DecisionContext{
		Street:        round.Street(),
		Hole:          append([]game.Card{}, p.Hole...),
		Community:     e.Community(),
		Seat:          p.Seat,
		Stack:         p.Stack,
		CurrentBet:    p.CurrentBet,
		HighestBet:    b.HighestBet,
		MinRaise:      b.MinRaise,
		PotTotal:      e.pot.Total(),
		ToCall:        b.ToCall(),
		CanCheck:      b.ToCall() == 0,
		CanRaise:      b.RaiseAllowed,
		FixedBet:      b.FixedBet,
		BigBlind:      e.cfg.BigBlind,
		PlayersInHand: len(e.table.PlayersInHand()),
	}
}

func (e *Engine) settle(ctx context.Context) (*HandResult, error) {
	potTotal := e.pot.Total()

	best := map[*game.Player]game.Hand{}
	for _, p := range e.table.PlayersInHand() {
		cards := append(append([]game.Card{}, p.Hole...), e.community...)
		if len(cards) < 5 {
			continue
		}
		h, err := game.BestHand(cards)
		if err != nil {
			return nil, err
		}
		best[p] = h
	}

	winnings, err := e.pot.Distribute(best, e.table.ShowdownOrder())
	if err != nil {
		return nil, err
	}

	result := &HandResult{
		HandID:   e.handID,
		Board:    e.Community(),
		PotTotal: potTotal,
		Winnings: map[string]int64{},
		Actions:  append([]ActionRecord{}, e.actions...),
	}
	for p, amount := range winnings {
		p.Stack += amount
		result.Winnings[p.ID] = amount
		if e.recorder != nil && e.handID != "" {
			if err := e.recorder.RecordResult(ctx, e.handID, p.ID, amount); err != nil {
				e.log.Warn().Err(err).Str("player", p.Name).Msg("record result failed")
			}
		}
		e.log.Info().Str("player", p.Name).Int64("won", amount).Msg("pot awarded")
	}
	if e.recorder != nil && e.handID != "" {
		if err := e.recorder.EndHand(ctx, e.handID); err != nil {
			e.log.Warn().Err(err).Msg("end hand failed")
		}
	}
	e.pot.Reset()
	return result, nil
}

func (e *Engine) recordAction(ctx context.Context, p *game.Player, street game.Street, action string, amount int64) {
	e.actions = append(e.actions, ActionRecord{
		PlayerID: p.ID,
		Street:   street,
		Action:   game.ActionType(action),
		Amount:   amount,
	})
	if e.recorder != nil && e.handID != "" {
		if err := e.recorder.RecordAction(ctx, e.handID, p.ID, string(street), action, amount); err != nil {
			e.log.Warn().Err(err).Str("player", p.Name).Msg("record action failed")
		}
	}
}
