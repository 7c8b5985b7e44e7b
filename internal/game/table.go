package game

import (
	"errors"

	"github.com/thoas/go-funk"
)

const MaxSeats = 9

var ErrTableFull = errors.New("table full")

// Table owns seating: who sits where and where the button is. The betting
// round and pot engine borrow its player records but never move seats.
type Table struct {
	seats  [MaxSeats]*Player
	dealer int
}

func NewTable() *Table {
	return &Table{}
}

// Seat places a player at the first empty seat.
func (t *Table) Seat(p *Player) error {
	for i := range t.seats {
		if t.seats[i] == nil {
			t.seats[i] = p
			p.Seat = i
			return nil
		}
	}
	return ErrTableFull
}

func (t *Table) SeatAt(i int, p *Player) error {
	if i < 0 || i >= MaxSeats || t.seats[i] != nil {
		return ErrTableFull
	}
	t.seats[i] = p
	p.Seat = i
	return nil
}

func (t *Table) Remove(seat int) {
	if seat >= 0 && seat < MaxSeats {
		t.seats[seat] = nil
	}
}

// Players returns the occupied seats in seat order.
func (t *Table) Players() []*Player {
	return funk.Filter(t.seats[:], func(p *Player) bool { return p != nil }).([]*Player)
}

// PlayersInHand returns seats that have not folded, in seat order.
func (t *Table) PlayersInHand() []*Player {
	return funk.Filter(t.Players(), func(p *Player) bool { return !p.Folded }).([]*Player)
}

// ActivePlayers returns seats that can still act (not folded, not all-in).
func (t *Table) ActivePlayers() []*Player {
	return funk.Filter(t.Players(), func(p *Player) bool { return p.Active() }).([]*Player)
}

func (t *Table) Dealer() int {
	return t.dealer
}

// MoveButton advances the dealer button to the next occupied seat.
func (t *Table) MoveButton() {
	if next, ok := t.nextOccupied(t.dealer); ok {
		t.dealer = next
	}
}

// SmallBlindSeat is the first occupied seat left of the button; heads-up the
// button itself posts the small blind.
func (t *Table) SmallBlindSeat() int {
	if len(t.Players()) == 2 {
		if t.seats[t.dealer] != nil {
			return t.dealer
		}
	}
	if next, ok := t.nextOccupied(t.dealer); ok {
		return next
	}
	return t.dealer
}

func (t *Table) BigBlindSeat() int {
	if next, ok := t.nextOccupied(t.SmallBlindSeat()); ok {
		return next
	}
	return t.dealer
}

// OrderFrom returns the occupied seats starting at the first occupied seat at
// or after the given index, wrapping around the table.
func (t *Table) OrderFrom(seat int) []*Player {
	out := make([]*Player, 0, MaxSeats)
	for i := 0; i < MaxSeats; i++ {
		p := t.seats[(seat+i)%MaxSeats]
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// ShowdownOrder lists occupied seats starting left of the button. Remainder
// chips from split pots are assigned in this order.
func (t *Table) ShowdownOrder() []*Player {
	return t.OrderFrom((t.dealer + 1) % MaxSeats)
}

func (t *Table) nextOccupied(from int) (int, bool) {
	for i := 1; i <= MaxSeats; i++ {
		idx := (from + i) % MaxSeats
		if t.seats[idx] != nil {
			return idx, true
		}
	}
	return 0, false
}
