package game

import "testing"

func TestPlayerCallShortStackGoesAllIn(t *testing.T) {
	p := NewPlayer("p", "p", 60)
	paid := p.Call(100)
	if paid != 60 || !p.AllIn || p.Stack != 0 || p.CurrentBet != 60 {
		t.Fatalf("short call commits the stack: paid=%d allin=%v stack=%d", paid, p.AllIn, p.Stack)
	}
}

func TestPlayerCallNothingOwed(t *testing.T) {
	p := NewPlayer("p", "p", 100)
	p.CurrentBet = 50
	if paid := p.Call(50); paid != 0 {
		t.Fatalf("nothing owed, got %d", paid)
	}
}

func TestPlayerRaiseToClampsToStack(t *testing.T) {
	p := NewPlayer("p", "p", 100)
	paid := p.RaiseTo(500)
	if paid != 100 || !p.AllIn || p.CurrentBet != 100 {
		t.Fatalf("raise clamps to the stack: paid=%d bet=%d", paid, p.CurrentBet)
	}
}

func TestPlayerStreetResetKeepsHandTotal(t *testing.T) {
	p := NewPlayer("p", "p", 1000)
	p.RaiseTo(200)
	p.ResetForStreet()
	if p.CurrentBet != 0 || p.TotalBet != 200 {
		t.Fatalf("street reset keeps the hand total: current=%d total=%d", p.CurrentBet, p.TotalBet)
	}
	p.ResetForHand()
	if p.TotalBet != 0 || p.Folded || p.AllIn {
		t.Fatalf("hand reset clears everything: %+v", p)
	}
}
