package game

import (
	"errors"
	"fmt"
)

type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

// Fixed-limit allows a bet plus three raises per street.
const limitMaxBetsPerStreet = 4

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrRoundComplete = errors.New("betting round complete")
)

// Action is a requested or effective player decision. Amount is the total
// street bet a raise lifts to; it is ignored for the other action types.
type Action struct {
	Type   ActionType
	Amount int64
}

// Bounds captures everything that decides whether an action is legal for the
// player about to act. Normalize is a pure function over it, so a stricter
// caller can validate against the same bounds instead of downgrading.
type Bounds struct {
	HighestBet   int64
	MinRaise     int64
	CurrentBet   int64 // acting player's bet already on this street
	MaxTotal     int64 // current bet plus remaining stack
	RaiseAllowed bool
	FixedLimit   bool
	FixedBet     int64 // street bet size in fixed-limit, 0 otherwise
}

// ToCall is the amount the player must add to match the highest bet.
func (b Bounds) ToCall() int64 {
	if b.HighestBet <= b.CurrentBet {
		return 0
	}
	return b.HighestBet - b.CurrentBet
}

// Normalize downgrades an illegal request to the nearest legal action rather
// than rejecting it, so heuristic deciders cannot wedge the round. A raise
// below the highest bet becomes a call, an undersized raise that is not
// all-in becomes a call, aggression after raising closed becomes a call, and
// a check facing a bet becomes a call.
func Normalize(req Action, b Bounds) Action {
	switch req.Type {
	case ActionFold:
		return Action{Type: ActionFold}

	case ActionCheck:
		if b.ToCall() > 0 {
			return Action{Type: ActionCall}
		}
		return Action{Type: ActionCheck}

	case ActionCall:
		if b.ToCall() == 0 {
			return Action{Type: ActionCheck}
		}
		return Action{Type: ActionCall}

	case ActionAllIn:
		if b.FixedLimit {
			// Fixed-limit treats a shove as an aggressive action to clamp.
			return Normalize(Action{Type: ActionRaise, Amount: b.MaxTotal}, b)
		}
		if b.MaxTotal > b.HighestBet && !b.RaiseAllowed {
			return Action{Type: ActionCall}
		}
		return Action{Type: ActionAllIn}

	case ActionRaise:
		if !b.RaiseAllowed {
			return Action{Type: ActionCall}
		}
		target := req.Amount
		if b.FixedLimit {
			if b.HighestBet == 0 {
				target = b.FixedBet
			} else {
				target = b.HighestBet + b.FixedBet
			}
		}
		if target > b.MaxTotal {
			target = b.MaxTotal
		}
		if target <= b.HighestBet {
			return Action{Type: ActionCall}
		}
		// Anything short of a min-raise must be the whole stack.
		if target < b.HighestBet+b.MinRaise && target < b.MaxTotal {
			return Action{Type: ActionCall}
		}
		return Action{Type: ActionRaise, Amount: target}

	default:
		if b.ToCall() > 0 {
			return Action{Type: ActionCall}
		}
		return Action{Type: ActionCheck}
	}
}

// Round drives one street of betting: turn order, action legality and the
// raise-reopening rules. Chip movements go straight into the Pot.
type Round struct {
	table      *Table
	pot        *Pot
	street     Street
	bigBlind   int64
	fixedLimit bool

	highestBet  int64
	minRaise    int64
	raiseCount  int
	raiseClosed map[*Player]bool
	acted       map[*Player]bool

	order []*Player
	idx   int
}

// NewRound starts a street. Preflop the blinds are expected to be posted
// already, so the highest bet and the fixed-limit bet count start from them.
func NewRound(table *Table, pot *Pot, street Street, bigBlind int64, fixedLimit bool) *Round {
	r := &Round{
		table:       table,
		pot:         pot,
		street:      street,
		bigBlind:    bigBlind,
		fixedLimit:  fixedLimit,
		raiseClosed: map[*Player]bool{},
		acted:       map[*Player]bool{},
	}

	for _, p := range table.PlayersInHand() {
		if p.CurrentBet > r.highestBet {
			r.highestBet = p.CurrentBet
		}
	}

	if fixedLimit {
		r.minRaise = r.StreetBetSize()
		if street == StreetPreflop && r.highestBet > 0 {
			// The big blind counts as the first bet.
			r.raiseCount = 1
		}
	} else {
		r.minRaise = bigBlind
	}

	start := (table.Dealer() + 1) % MaxSeats
	if street == StreetPreflop {
		start = (table.BigBlindSeat() + 1) % MaxSeats
	}
	r.order = table.OrderFrom(start)
	return r
}

// StreetBetSize is the fixed-limit bet unit for this street: one big blind
// preflop and on the flop, two on the turn and river.
func (r *Round) StreetBetSize() int64 {
	if r.street == StreetTurn || r.street == StreetRiver {
		return r.bigBlind * 2
	}
	return r.bigBlind
}

func (r *Round) Street() Street { return r.street }

func (r *Round) HighestBet() int64 { return r.highestBet }

func (r *Round) MinRaise() int64 { return r.minRaise }

// RaiseAllowedFor reports whether the player may still raise this street.
func (r *Round) RaiseAllowedFor(p *Player) bool {
	if r.raiseClosed[p] {
		return false
	}
	if r.fixedLimit && r.raiseCount >= limitMaxBetsPerStreet {
		return false
	}
	return true
}

// BoundsFor builds the legality bounds for the given player.
func (r *Round) BoundsFor(p *Player) Bounds {
	b := Bounds{
		HighestBet:   r.highestBet,
		MinRaise:     r.minRaise,
		CurrentBet:   p.CurrentBet,
		MaxTotal:     p.CurrentBet + p.Stack,
		RaiseAllowed: r.RaiseAllowedFor(p),
		FixedLimit:   r.fixedLimit,
	}
	if r.fixedLimit {
		b.FixedBet = r.StreetBetSize()
	}
	return b
}

// Next returns the player to act, or nil once the round is complete. Folded
// and all-in seats are skipped in place.
func (r *Round) Next() *Player {
	if len(r.order) == 0 || r.Complete() {
		return nil
	}
	for i := 0; i < len(r.order); i++ {
		p := r.order[(r.idx+i)%len(r.order)]
		if !p.Active() {
			continue
		}
		r.idx = (r.idx + i) % len(r.order)
		return p
	}
	return nil
}

// Complete reports round termination: one player left in the hand, or every
// active player has acted and matched the highest bet.
func (r *Round) Complete() bool {
	inHand := 0
	for _, p := range r.order {
		if !p.Folded {
			inHand++
		}
	}
	if inHand <= 1 {
		return true
	}
	for _, p := range r.order {
		if p.Folded || p.AllIn {
			continue
		}
		if !r.acted[p] {
			return false
		}
		if p.CurrentBet != r.highestBet {
			return false
		}
	}
	return true
}

// Apply normalizes and executes one action for the player whose turn it is.
// It returns the effective action and the chips the player committed.
func (r *Round) Apply(p *Player, req Action) (Action, int64, error) {
	turn := r.Next()
	if turn == nil {
		return Action{}, 0, ErrRoundComplete
	}
	if turn != p {
		return Action{}, 0, fmt.Errorf("%s acting out of turn: %w", p.Name, ErrNotYourTurn)
	}

	eff := Normalize(req, r.BoundsFor(p))
	var paid int64

	switch eff.Type {
	case ActionFold:
		p.Fold()
		r.acted[p] = true

	case ActionCheck:
		r.acted[p] = true

	case ActionCall:
		paid = p.Call(r.highestBet)
		if err := r.pot.Add(p, paid); err != nil {
			return Action{}, 0, err
		}
		r.acted[p] = true

	case ActionRaise:
		prevHighest := r.highestBet
		prevMin := r.minRaise
		paid = p.RaiseTo(eff.Amount)
		if err := r.pot.Add(p, paid); err != nil {
			return Action{}, 0, err
		}
		r.highestBet = p.CurrentBet
		r.applyRaiseBookkeeping(p, p.CurrentBet-prevHighest, prevMin)

	case ActionAllIn:
		prevHighest := r.highestBet
		prevMin := r.minRaise
		paid = p.GoAllIn()
		if err := r.pot.Add(p, paid); err != nil {
			return Action{}, 0, err
		}
		if p.CurrentBet > prevHighest {
			r.highestBet = p.CurrentBet
			r.applyRaiseBookkeeping(p, p.CurrentBet-prevHighest, prevMin)
		} else {
			r.acted[p] = true
		}
	}

	p.LastAction = eff.Type
	r.idx = (r.idx + 1) % max(len(r.order), 1)
	return eff, paid, nil
}

// applyRaiseBookkeeping settles the reopening rules after an aggressive
// action. A full raise resets the acted flags of every other active player
// and becomes the new minimum increment; a short all-in raise instead closes
// raising for everyone who already acted.
func (r *Round) applyRaiseBookkeeping(raiser *Player, raiseSize, prevMin int64) {
	fullRaise := raiseSize >= prevMin
	if fullRaise {
		r.minRaise = raiseSize
		r.raiseClosed = map[*Player]bool{}
		if r.fixedLimit {
			r.raiseCount++
		}
		for _, p := range r.order {
			if !p.AllIn {
				r.acted[p] = false
			}
		}
	} else {
		for _, p := range r.order {
			if r.acted[p] && p != raiser {
				r.raiseClosed[p] = true
			}
		}
	}
	r.acted[raiser] = true
}
