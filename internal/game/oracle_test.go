package game

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"
)

// toOracle converts to the reference evaluator's encoding, which plays the
// ace as rank 1.
func toOracle(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = poker.Rank(1)
	}
	oc, err := poker.MakeCard(s, r)
	if err != nil {
		panic(err)
	}
	return oc
}

func oracleScore(cards []Card) int16 {
	var seven [7]poker.Card
	for i, c := range cards {
		seven[i] = toOracle(c)
	}
	return poker.Eval7(&seven)
}

// TestBestHandAgreesWithOracle cross-checks the 7-card ordering against an
// independent evaluator over random deals. A higher oracle score is a
// stronger hand.
func TestBestHandAgreesWithOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		deck := NewDeck()
		deck.Shuffle(rnd)
		a := deck.DealN(7)
		b := deck.DealN(7)

		ha, err := BestHand(a)
		if err != nil {
			t.Fatal(err)
		}
		hb, err := BestHand(b)
		if err != nil {
			t.Fatal(err)
		}
		got := ha.Compare(hb)

		sa, sb := oracleScore(a), oracleScore(b)
		want := 0
		if sa > sb {
			want = 1
		} else if sa < sb {
			want = -1
		}

		if got != want {
			t.Fatalf("deal %d: %v vs %v compared %d, oracle %d vs %d wants %d",
				i, ha, hb, got, sa, sb, want)
		}
	}
}
