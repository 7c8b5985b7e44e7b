package game

import "math/rand"

type Suit int

type Rank int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

var rankSymbols = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var suitSymbols = map[Suit]string{Hearts: "h", Diamonds: "d", Clubs: "c", Spades: "s"}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return rankSymbols[c.Rank] + suitSymbols[c.Suit]
}

// Value returns the ordering value of the card, ace high.
func (c Card) Value() int {
	return int(c.Rank)
}

// LowAceValue treats the ace as 1. Only wheel detection cares.
func (c Card) LowAceValue() int {
	if c.Rank == Ace {
		return 1
	}
	return int(c.Rank)
}

type Deck struct {
	cards []Card
}

func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for s := Hearts; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle reorders the deck using the supplied source so hands can be
// replayed deterministically in tests.
func (d *Deck) Shuffle(rnd *rand.Rand) {
	rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Deal() Card {
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

func (d *Deck) DealN(n int) []Card {
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.Deal())
	}
	return out
}

// Burn discards the top card before dealing a street.
func (d *Deck) Burn() {
	if len(d.cards) > 0 {
		d.cards = d.cards[1:]
	}
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
