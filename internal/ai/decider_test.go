package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

func TestNewCoversEveryStyle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	assert.IsType(t, &Cautious{}, New(StyleCautious, rnd))
	assert.IsType(t, &Wild{}, New(StyleWild, rnd))
	assert.IsType(t, &Balanced{}, New(StyleBalanced, rnd))
	assert.IsType(t, &Random{}, New(StyleRandom, rnd))
	assert.IsType(t, &Cautious{}, New(Style("unknown"), rnd))
}

func TestPreflopStrengthOrdersHands(t *testing.T) {
	aces := preflopStrength([]game.Card{{Rank: game.Ace, Suit: game.Spades}, {Rank: game.Ace, Suit: game.Hearts}})
	trash := preflopStrength([]game.Card{{Rank: game.Seven, Suit: game.Spades}, {Rank: game.Two, Suit: game.Hearts}})
	assert.Greater(t, aces, trash)

	suited := preflopStrength([]game.Card{{Rank: game.Nine, Suit: game.Clubs}, {Rank: game.Eight, Suit: game.Clubs}})
	offsuit := preflopStrength([]game.Card{{Rank: game.Nine, Suit: game.Clubs}, {Rank: game.Eight, Suit: game.Hearts}})
	assert.Greater(t, suited, offsuit)
}

func TestHandStrengthUsesBoardWhenDealt(t *testing.T) {
	ctx := DecisionContext{
		Hole: []game.Card{{Rank: game.Ace, Suit: game.Spades}, {Rank: game.Ace, Suit: game.Hearts}},
		Community: []game.Card{
			{Rank: game.Ace, Suit: game.Clubs},
			{Rank: game.Ace, Suit: game.Diamonds},
			{Rank: game.King, Suit: game.Spades},
		},
	}
	assert.Equal(t, categoryStrength[game.FourOfAKind], handStrength(ctx))
}

func sampleContexts() []DecisionContext {
	return []DecisionContext{
		{
			Street:        game.StreetPreflop,
			Hole:          []game.Card{{Rank: game.Ace, Suit: game.Spades}, {Rank: game.King, Suit: game.Spades}},
			Stack:         1000,
			HighestBet:    10,
			MinRaise:      10,
			PotTotal:      15,
			ToCall:        10,
			CanRaise:      true,
			BigBlind:      10,
			PlayersInHand: 3,
		},
		{
			Street:        game.StreetFlop,
			Hole:          []game.Card{{Rank: game.Seven, Suit: game.Clubs}, {Rank: game.Two, Suit: game.Diamonds}},
			Community:     []game.Card{{Rank: game.Ace, Suit: game.Hearts}, {Rank: game.King, Suit: game.Clubs}, {Rank: game.Nine, Suit: game.Spades}},
			Stack:         400,
			HighestBet:    100,
			MinRaise:      100,
			PotTotal:      300,
			ToCall:        100,
			CanRaise:      true,
			BigBlind:      10,
			PlayersInHand: 4,
		},
		{
			Street:        game.StreetRiver,
			Hole:          []game.Card{{Rank: game.Queen, Suit: game.Hearts}, {Rank: game.Queen, Suit: game.Diamonds}},
			Community:     []game.Card{{Rank: game.Queen, Suit: game.Spades}, {Rank: game.Two, Suit: game.Clubs}, {Rank: game.Nine, Suit: game.Hearts}, {Rank: game.Four, Suit: game.Diamonds}, {Rank: game.Jack, Suit: game.Clubs}},
			Stack:         900,
			PotTotal:      200,
			CanCheck:      true,
			CanRaise:      true,
			BigBlind:      10,
			PlayersInHand: 2,
		},
	}
}

// Every style must produce a known action type with a sane amount; the
// betting round normalizes the rest.
func TestStylesProduceWellFormedActions(t *testing.T) {
	valid := map[game.ActionType]bool{
		game.ActionFold:  true,
		game.ActionCheck: true,
		game.ActionCall:  true,
		game.ActionRaise: true,
		game.ActionAllIn: true,
	}
	for _, style := range Styles {
		rnd := rand.New(rand.NewSource(99))
		d := New(style, rnd)
		for _, ctx := range sampleContexts() {
			for i := 0; i < 50; i++ {
				a := d.Decide(ctx)
				require.Truef(t, valid[a.Type], "style %s produced %q", style, a.Type)
				if a.Type == game.ActionRaise {
					require.Positivef(t, a.Amount, "style %s raised to %d", style, a.Amount)
				}
				if ctx.CanCheck {
					require.NotEqualf(t, game.ActionFold, a.Type, "style %s folded a free option", style)
				}
			}
		}
	}
}

func TestCautiousFoldsTrashFacingBigBet(t *testing.T) {
	ctx := DecisionContext{
		Street:        game.StreetFlop,
		Hole:          []game.Card{{Rank: game.Seven, Suit: game.Clubs}, {Rank: game.Two, Suit: game.Diamonds}},
		Community:     []game.Card{{Rank: game.Ace, Suit: game.Hearts}, {Rank: game.King, Suit: game.Clubs}, {Rank: game.Nine, Suit: game.Spades}},
		Stack:         500,
		HighestBet:    400,
		MinRaise:      100,
		PotTotal:      500,
		ToCall:        400,
		CanRaise:      true,
		BigBlind:      10,
		PlayersInHand: 2,
	}
	d := New(StyleCautious, rand.New(rand.NewSource(1)))
	assert.Equal(t, game.ActionFold, d.Decide(ctx).Type)
}
