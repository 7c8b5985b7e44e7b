package game

type ActionType string

const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
	ActionAllIn ActionType = "all_in"
)

// Player is a seat record. The betting round mutates the fold/all-in/bet
// fields; seating assignment belongs to the Table.
type Player struct {
	ID         string
	Name       string
	Seat       int
	Stack      int64
	Hole       []Card
	CurrentBet int64
	TotalBet   int64
	Folded     bool
	AllIn      bool
	LastAction ActionType
}

func NewPlayer(id, name string, stack int64) *Player {
	return &Player{ID: id, Name: name, Stack: stack}
}

// placeBet moves chips from the stack into the current street bet. The
// amount is clamped to the stack; betting the whole stack marks all-in.
func (p *Player) placeBet(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	if amount >= p.Stack {
		amount = p.Stack
		p.AllIn = true
	}
	p.Stack -= amount
	p.CurrentBet += amount
	p.TotalBet += amount
	return amount
}

// Call matches the street's highest bet, going all-in for less when the
// stack cannot cover the full call. Returns the chips actually committed.
func (p *Player) Call(highestBet int64) int64 {
	need := highestBet - p.CurrentBet
	if need <= 0 {
		return 0
	}
	return p.placeBet(need)
}

// RaiseTo lifts the player's street bet to the given total. Returns the
// chips committed. Legality is the betting round's job, not the player's.
func (p *Player) RaiseTo(target int64) int64 {
	return p.placeBet(target - p.CurrentBet)
}

// GoAllIn commits the whole remaining stack.
func (p *Player) GoAllIn() int64 {
	return p.placeBet(p.Stack)
}

func (p *Player) Fold() {
	p.Folded = true
}

// Active reports whether the player can still act this street.
func (p *Player) Active() bool {
	return !p.Folded && !p.AllIn
}

func (p *Player) ResetForHand() {
	p.Hole = nil
	p.CurrentBet = 0
	p.TotalBet = 0
	p.Folded = false
	p.AllIn = false
	p.LastAction = ""
}

func (p *Player) ResetForStreet() {
	p.CurrentBet = 0
}
