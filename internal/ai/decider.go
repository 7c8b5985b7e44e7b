// Package ai holds the opponent decision policies. They are heuristic glue:
// the betting round normalizes whatever they propose, so a policy can never
// corrupt the rules engine.
package ai

import (
	"math/rand"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

// DecisionContext is everything the engine shows a decision source for one
// turn. It carries no reference to engine internals.
type DecisionContext struct {
	Street        game.Street
	Hole          []game.Card
	Community     []game.Card
	Seat          int
	Stack         int64
	CurrentBet    int64
	HighestBet    int64
	MinRaise      int64
	PotTotal      int64
	ToCall        int64
	CanCheck      bool
	CanRaise      bool
	FixedBet      int64
	BigBlind      int64
	PlayersInHand int
}

// Decider produces an action for the acting player. Implementations include
// the four AI personalities and the interactive prompt in cmd/trainer.
type Decider interface {
	Decide(ctx DecisionContext) game.Action
}

type Style string

const (
	StyleCautious Style = "cautious"
	StyleWild     Style = "wild"
	StyleBalanced Style = "balanced"
	StyleRandom   Style = "random"
)

var Styles = []Style{StyleCautious, StyleWild, StyleBalanced, StyleRandom}

// New builds a decider of the given style. The rand source is injected so
// tests can fix the seed.
func New(style Style, rnd *rand.Rand) Decider {
	switch style {
	case StyleWild:
		return &Wild{rnd: rnd}
	case StyleBalanced:
		return &Balanced{rnd: rnd}
	case StyleRandom:
		return &Random{rnd: rnd}
	default:
		return &Cautious{rnd: rnd}
	}
}

func roundToNearest5(amount int64) int64 {
	return ((amount + 2) / 5) * 5
}

// handStrength maps the made hand to a 0..1 scale, or scores the hole cards
// when no community cards are out yet.
func handStrength(ctx DecisionContext) float64 {
	if len(ctx.Hole) != 2 {
		return 0.5
	}
	if len(ctx.Community) == 0 {
		return preflopStrength(ctx.Hole)
	}
	all := append(append([]game.Card{}, ctx.Hole...), ctx.Community...)
	if len(all) < 5 {
		return 0.5
	}
	best, err := game.BestHand(all)
	if err != nil {
		return 0.5
	}
	return categoryStrength[best.Category]
}

var categoryStrength = map[game.HandCategory]float64{
	game.HighCard:      0.1,
	game.Pair:          0.3,
	game.TwoPair:       0.45,
	game.ThreeOfAKind:  0.6,
	game.Straight:      0.7,
	game.Flush:         0.75,
	game.FullHouse:     0.85,
	game.FourOfAKind:   0.95,
	game.StraightFlush: 0.98,
	game.RoyalFlush:    1.0,
}

func preflopStrength(hole []game.Card) float64 {
	c1, c2 := hole[0], hole[1]
	if c1.Rank == c2.Rank {
		return 0.6 + float64(c1.Value())/14*0.3
	}
	high := float64(maxInt(c1.Value(), c2.Value())) / 14
	low := float64(minInt(c1.Value(), c2.Value())) / 14

	suited := 0.0
	if c1.Suit == c2.Suit {
		suited = 0.05
	}
	connected := 0.0
	switch gap(c1, c2) {
	case 1:
		connected = 0.05
	case 2:
		connected = 0.03
	}

	strength := high*0.6 + low*0.2 + suited + connected
	if strength > 1 {
		strength = 1
	}
	return strength
}

func gap(c1, c2 game.Card) int {
	d := c1.Value() - c2.Value()
	if d < 0 {
		d = -d
	}
	return d
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
