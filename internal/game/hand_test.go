package game

import "testing"

func TestClassifyRoyalFlush(t *testing.T) {
	cards := []Card{{Ace, Spades}, {King, Spades}, {Queen, Spades}, {Jack, Spades}, {Ten, Spades}}
	h, err := Classify(cards)
	if err != nil || h.Category != RoyalFlush {
		t.Fatalf("expected royal flush, got %v err=%v", h.Category, err)
	}
	sf, _ := Classify([]Card{{Nine, Spades}, {Eight, Spades}, {Seven, Spades}, {Six, Spades}, {Five, Spades}})
	if sf.Category != StraightFlush || sf.TieBreaks()[0] != int(Nine) {
		t.Fatalf("expected 9-high straight flush, got %v %v", sf.Category, sf.TieBreaks())
	}
	if !h.BetterThan(sf) {
		t.Fatalf("royal flush must beat a 9-high straight flush")
	}
}

func TestClassifyWheelIsFiveHigh(t *testing.T) {
	wheel, err := Classify([]Card{{Ace, Hearts}, {Two, Clubs}, {Three, Diamonds}, {Four, Spades}, {Five, Hearts}})
	if err != nil || wheel.Category != Straight {
		t.Fatalf("expected straight, got %v err=%v", wheel.Category, err)
	}
	if tb := wheel.TieBreaks(); tb[0] != 5 {
		t.Fatalf("wheel should be 5-high, got %d", tb[0])
	}
	sixHigh, _ := Classify([]Card{{Two, Hearts}, {Three, Clubs}, {Four, Diamonds}, {Five, Spades}, {Six, Hearts}})
	if !sixHigh.BetterThan(wheel) {
		t.Fatalf("6-high straight must beat the wheel")
	}
	aceHigh, _ := Classify([]Card{{Ace, Hearts}, {King, Clubs}, {Queen, Diamonds}, {Jack, Spades}, {Nine, Hearts}})
	if !wheel.BetterThan(aceHigh) {
		t.Fatalf("wheel must beat any unpaired hand")
	}
}

func TestClassifyWheelStraightFlushNotRoyal(t *testing.T) {
	h, err := Classify([]Card{{Ace, Clubs}, {Two, Clubs}, {Three, Clubs}, {Four, Clubs}, {Five, Clubs}})
	if err != nil || h.Category != StraightFlush {
		t.Fatalf("expected straight flush, got %v err=%v", h.Category, err)
	}
	if tb := h.TieBreaks(); tb[0] != 5 {
		t.Fatalf("steel wheel should be 5-high, got %d", tb[0])
	}
}

func TestClassifyFullHouse(t *testing.T) {
	h, err := Classify([]Card{{King, Spades}, {King, Hearts}, {King, Clubs}, {Two, Spades}, {Two, Diamonds}})
	if err != nil || h.Category != FullHouse {
		t.Fatalf("expected full house, got %v err=%v", h.Category, err)
	}
	tb := h.TieBreaks()
	if tb[0] != int(King) || tb[1] != int(Two) {
		t.Fatalf("expected tie-breaks [13 2], got %v", tb)
	}
}

func TestClassifyFourOfAKindKicker(t *testing.T) {
	hi, _ := Classify([]Card{{Nine, Spades}, {Nine, Hearts}, {Nine, Clubs}, {Nine, Diamonds}, {Ace, Spades}})
	lo, _ := Classify([]Card{{Nine, Spades}, {Nine, Hearts}, {Nine, Clubs}, {Nine, Diamonds}, {King, Spades}})
	if hi.Category != FourOfAKind || !hi.BetterThan(lo) {
		t.Fatalf("ace kicker quads must beat king kicker quads")
	}
}

func TestClassifyTwoPairKicker(t *testing.T) {
	hi, _ := Classify([]Card{{Ace, Spades}, {Ace, Hearts}, {King, Clubs}, {King, Diamonds}, {Queen, Hearts}})
	lo, _ := Classify([]Card{{Ace, Clubs}, {Ace, Diamonds}, {King, Spades}, {King, Hearts}, {Jack, Clubs}})
	if hi.Category != TwoPair || lo.Category != TwoPair {
		t.Fatalf("expected two pair, got %v and %v", hi.Category, lo.Category)
	}
	if !hi.BetterThan(lo) {
		t.Fatalf("queen kicker must beat jack kicker")
	}
}

func TestClassifySplitPotTie(t *testing.T) {
	a, _ := Classify([]Card{{Ace, Spades}, {Ace, Hearts}, {King, Clubs}, {King, Diamonds}, {Queen, Hearts}})
	b, _ := Classify([]Card{{Ace, Clubs}, {Ace, Diamonds}, {King, Spades}, {King, Hearts}, {Queen, Spades}})
	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Fatalf("same ranks in different suits must tie")
	}
}

func TestClassifyFlushBeatsStraight(t *testing.T) {
	flush, _ := Classify([]Card{{Two, Hearts}, {Five, Hearts}, {Eight, Hearts}, {Jack, Hearts}, {King, Hearts}})
	straight, _ := Classify([]Card{{Nine, Spades}, {Ten, Hearts}, {Jack, Clubs}, {Queen, Diamonds}, {King, Spades}})
	if flush.Category != Flush || straight.Category != Straight {
		t.Fatalf("got %v and %v", flush.Category, straight.Category)
	}
	if !flush.BetterThan(straight) || straight.BetterThan(flush) {
		t.Fatalf("flush must beat straight")
	}
}

func TestClassifyPairKickersDecide(t *testing.T) {
	hi, _ := Classify([]Card{{Eight, Spades}, {Eight, Hearts}, {Ace, Clubs}, {Queen, Diamonds}, {Three, Hearts}})
	lo, _ := Classify([]Card{{Eight, Clubs}, {Eight, Diamonds}, {Ace, Spades}, {Jack, Hearts}, {Three, Clubs}})
	if !hi.BetterThan(lo) {
		t.Fatalf("queen second kicker must beat jack")
	}
}

func TestClassifyRequiresFiveCards(t *testing.T) {
	if _, err := Classify([]Card{{Ace, Spades}, {King, Spades}}); err == nil {
		t.Fatalf("expected error for short input")
	}
	cards := []Card{{Ace, Spades}, {King, Spades}, {Queen, Spades}, {Jack, Spades}, {Ten, Spades}, {Two, Hearts}}
	if _, err := Classify(cards); err == nil {
		t.Fatalf("expected error for six cards")
	}
}

func TestBestHandSevenCards(t *testing.T) {
	cards := []Card{
		{Ace, Hearts}, {King, Hearts}, {Nine, Hearts}, {Four, Hearts}, {Two, Hearts},
		{Ace, Spades}, {Ace, Clubs},
	}
	h, err := BestHand(cards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Category != Flush {
		t.Fatalf("expected the flush over trip aces, got %v", h.Category)
	}
}

func TestBestHandBoardPlays(t *testing.T) {
	cards := []Card{
		{Two, Hearts}, {Seven, Clubs},
		{Ten, Spades}, {Jack, Spades}, {Queen, Spades}, {King, Spades}, {Ace, Spades},
	}
	h, err := BestHand(cards)
	if err != nil || h.Category != RoyalFlush {
		t.Fatalf("expected royal flush from the board, got %v err=%v", h.Category, err)
	}
}

func TestBestHandRejectsShortInput(t *testing.T) {
	if _, err := BestHand([]Card{{Ace, Spades}, {King, Spades}, {Queen, Spades}, {Jack, Spades}}); err == nil {
		t.Fatalf("expected error for four cards")
	}
}

func TestBestHandDominatesEverySubset(t *testing.T) {
	cards := []Card{
		{Ace, Hearts}, {King, Hearts}, {Nine, Hearts}, {Nine, Spades},
		{Four, Hearts}, {Two, Hearts}, {Nine, Clubs},
	}
	best, err := BestHand(cards)
	if err != nil {
		t.Fatal(err)
	}
	pick := make([]Card, 5)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			h, err := Classify(pick)
			if err != nil {
				t.Fatal(err)
			}
			if h.BetterThan(best) {
				t.Fatalf("subset %v beats the chosen best %v", h, best)
			}
			return
		}
		for i := start; i <= len(cards)-(5-depth); i++ {
			pick[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

func TestCompareIsTotalOrder(t *testing.T) {
	low, _ := Classify([]Card{{Two, Hearts}, {Five, Clubs}, {Eight, Diamonds}, {Jack, Spades}, {King, Hearts}})
	mid, _ := Classify([]Card{{Two, Hearts}, {Two, Clubs}, {Eight, Diamonds}, {Jack, Spades}, {King, Hearts}})
	high, _ := Classify([]Card{{Two, Hearts}, {Two, Clubs}, {Eight, Diamonds}, {Eight, Spades}, {King, Hearts}})
	if !low.Less(mid) || !mid.Less(high) || !low.Less(high) {
		t.Fatalf("ordering must be transitive")
	}
	if low.Compare(mid) != -1 || mid.Compare(low) != 1 || low.Compare(low) != 0 {
		t.Fatalf("compare must be antisymmetric")
	}
}
