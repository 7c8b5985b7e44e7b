package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadCard = errors.New("bad card")

var parseRanks = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "T": Ten, "10": Ten, "J": Jack, "Q": Queen,
	"K": King, "A": Ace,
}

var parseSuits = map[string]Suit{"h": Hearts, "d": Diamonds, "c": Clubs, "s": Spades}

// ParseCard reads the compact notation Card.String produces, e.g. "Ah",
// "Td", "9s". "10h" is accepted too.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%q: %w", s, ErrBadCard)
	}
	rank, ok := parseRanks[strings.ToUpper(s[:len(s)-1])]
	if !ok {
		return Card{}, fmt.Errorf("%q: %w", s, ErrBadCard)
	}
	suit, ok := parseSuits[strings.ToLower(s[len(s)-1:])]
	if !ok {
		return Card{}, fmt.Errorf("%q: %w", s, ErrBadCard)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards reads a list of compact card strings.
func ParseCards(ss []string) ([]Card, error) {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
