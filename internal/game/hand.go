package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotEnoughCards = errors.New("not enough cards")

// HandCategory orders the ten poker hand classes from weakest to strongest.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[HandCategory]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (c HandCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("HandCategory(%d)", int(c))
}

// Hand is a classified 5-card hand. Hands are value types with a total
// ordering: category first, then the tie-break ranks in the priority order
// the category defines (e.g. two pair compares high pair, low pair, kicker).
type Hand struct {
	Cards    [5]Card
	Category HandCategory
	// ranks holds the category-specific tie-break values, most significant
	// first. Two hands are equal iff category and every rank match.
	ranks []int
}

// TieBreaks exposes the tie-break values, most significant first.
func (h Hand) TieBreaks() []int {
	out := make([]int, len(h.ranks))
	copy(out, h.ranks)
	return out
}

// Compare returns -1, 0 or 1 as h sorts below, equal to or above o.
func (h Hand) Compare(o Hand) int {
	if h.Category != o.Category {
		if h.Category < o.Category {
			return -1
		}
		return 1
	}
	for i := 0; i < len(h.ranks) && i < len(o.ranks); i++ {
		if h.ranks[i] != o.ranks[i] {
			if h.ranks[i] < o.ranks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (h Hand) Less(o Hand) bool { return h.Compare(o) < 0 }

func (h Hand) BetterThan(o Hand) bool { return h.Compare(o) > 0 }

// Equal reports a split-pot tie: same category, same tie-break ranks.
func (h Hand) Equal(o Hand) bool { return h.Compare(o) == 0 }

func (h Hand) String() string {
	parts := make([]string, 0, 5)
	for _, c := range h.Cards {
		parts = append(parts, c.String())
	}
	return h.Category.String() + ": " + strings.Join(parts, " ")
}

// Classify evaluates exactly five cards.
func Classify(cards []Card) (Hand, error) {
	if len(cards) != 5 {
		return Hand{}, fmt.Errorf("classify needs exactly 5 cards, got %d: %w", len(cards), ErrNotEnoughCards)
	}

	sorted := make([]Card, 5)
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value() > sorted[j].Value() })

	var h Hand
	copy(h.Cards[:], sorted)

	counts := map[int]int{}
	suits := map[Suit]int{}
	values := make([]int, 0, 5)
	for _, c := range sorted {
		counts[c.Value()]++
		suits[c.Suit]++
		values = append(values, c.Value())
	}

	isFlush := len(suits) == 1
	isStraight, straightHigh := straightHighCard(values)

	if isFlush && isStraight {
		if straightHigh == int(Ace) {
			h.Category = RoyalFlush
		} else {
			h.Category = StraightFlush
		}
		h.ranks = []int{straightHigh}
		return h, nil
	}

	type rankCount struct {
		value int
		count int
	}
	groups := make([]rankCount, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, rankCount{value: v, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	switch {
	case groups[0].count == 4:
		h.Category = FourOfAKind
		h.ranks = append([]int{groups[0].value}, kickersExcluding(values, 1, groups[0].value)...)
	case groups[0].count == 3 && groups[1].count == 2:
		h.Category = FullHouse
		h.ranks = []int{groups[0].value, groups[1].value}
	case isFlush:
		h.Category = Flush
		h.ranks = values
	case isStraight:
		h.Category = Straight
		h.ranks = []int{straightHigh}
	case groups[0].count == 3:
		h.Category = ThreeOfAKind
		h.ranks = append([]int{groups[0].value}, kickersExcluding(values, 2, groups[0].value)...)
	case groups[0].count == 2 && groups[1].count == 2:
		h.Category = TwoPair
		h.ranks = append([]int{groups[0].value, groups[1].value},
			kickersExcluding(values, 1, groups[0].value, groups[1].value)...)
	case groups[0].count == 2:
		h.Category = Pair
		h.ranks = append([]int{groups[0].value}, kickersExcluding(values, 3, groups[0].value)...)
	default:
		h.Category = HighCard
		h.ranks = values
	}
	return h, nil
}

// BestHand finds the strongest 5-card hand among all 5-card subsets of the
// input. With the usual 7 cards that is C(7,5)=21 classifications.
func BestHand(cards []Card) (Hand, error) {
	if len(cards) < 5 {
		return Hand{}, fmt.Errorf("need at least 5 cards, got %d: %w", len(cards), ErrNotEnoughCards)
	}
	if len(cards) == 5 {
		return Classify(cards)
	}

	var best Hand
	found := false
	pick := make([]Card, 5)
	var walk func(start, depth int) error
	walk = func(start, depth int) error {
		if depth == 5 {
			h, err := Classify(pick)
			if err != nil {
				return err
			}
			if !found || h.BetterThan(best) {
				best = h
				found = true
			}
			return nil
		}
		for i := start; i <= len(cards)-(5-depth); i++ {
			pick[depth] = cards[i]
			if err := walk(i+1, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, 0); err != nil {
		return Hand{}, err
	}
	return best, nil
}

// straightHighCard reports whether the five distinct-or-not values form a
// straight and the straight's high card. The wheel (A-2-3-4-5) resolves to a
// 5-high straight, never ace-high.
func straightHighCard(values []int) (bool, int) {
	if len(distinct(values)) != 5 {
		return false, 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if sorted[0]-sorted[4] == 4 {
		return true, sorted[0]
	}
	if sorted[0] == int(Ace) && sorted[1] == 5 && sorted[4] == 2 && sorted[1]-sorted[4] == 3 {
		return true, 5
	}
	return false, 0
}

func distinct(values []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// kickersExcluding returns the top n values not in exclude, descending.
// Input values must already be sorted descending.
func kickersExcluding(values []int, n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for _, v := range values {
		skip := false
		for _, e := range exclude {
			if v == e {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
