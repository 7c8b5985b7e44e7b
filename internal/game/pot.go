package game

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNegativeContribution = errors.New("negative contribution")
	ErrPotMismatch          = errors.New("pot accounting mismatch")
)

// Pot tracks cumulative per-player contributions for one hand and derives
// main/side pot tiers from the distinct contribution levels. It never checks
// betting legality; that is the Round's job.
type Pot struct {
	total         int64
	contributions map[*Player]int64
	contributors  []*Player
}

func NewPot() *Pot {
	return &Pot{contributions: map[*Player]int64{}}
}

// Add registers chips committed by a player. Contributions only ever grow
// within a hand.
func (p *Pot) Add(player *Player, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("add %d for %s: %w", amount, player.Name, ErrNegativeContribution)
	}
	if _, seen := p.contributions[player]; !seen {
		p.contributors = append(p.contributors, player)
	}
	p.contributions[player] += amount
	p.total += amount
	return nil
}

func (p *Pot) Total() int64 {
	return p.total
}

func (p *Pot) Contribution(player *Player) int64 {
	return p.contributions[player]
}

// Tier is one pot level: the main pot is the lowest tier, side pots follow.
type Tier struct {
	Amount   int64
	Eligible []*Player
}

// Tiers splits the pot at each distinct contribution level. Folded players'
// chips count toward tier amounts but folded players are never eligible. A
// tier left with no eligible players is merged into the next tier that has
// some; a trailing orphan folds back into the last real tier.
func (p *Pot) Tiers() []Tier {
	if len(p.contributions) == 0 {
		return nil
	}

	levels := p.levels()

	tiers := make([]Tier, 0, len(levels))
	var prev, carry int64
	for _, level := range levels {
		var covering int
		eligible := make([]*Player, 0, len(p.contributors))
		for _, pl := range p.contributors {
			if p.contributions[pl] < level {
				continue
			}
			covering++
			if !pl.Folded {
				eligible = append(eligible, pl)
			}
		}
		amount := (level-prev)*int64(covering) + carry
		carry = 0
		prev = level

		if len(eligible) == 0 {
			carry = amount
			continue
		}
		tiers = append(tiers, Tier{Amount: amount, Eligible: eligible})
	}
	if carry > 0 && len(tiers) > 0 {
		tiers[len(tiers)-1].Amount += carry
	} else if carry > 0 {
		tiers = append(tiers, Tier{Amount: carry})
	}
	return tiers
}

// Distribute pays each tier to the best eligible hand(s). Tied winners split
// evenly; remainder chips go one apiece in seatOrder (left of the button
// first). If only one contributor is still in the hand they take everything.
func (p *Pot) Distribute(best map[*Player]Hand, seatOrder []*Player) (map[*Player]int64, error) {
	winnings := map[*Player]int64{}
	if p.total == 0 {
		return winnings, nil
	}

	if last, ok := p.soleSurvivor(); ok {
		winnings[last] = p.total
		return winnings, nil
	}

	var paid int64
	for _, tier := range p.Tiers() {
		winners := tierWinners(tier, best)
		if len(winners) == 0 {
			return nil, fmt.Errorf("tier of %d has no rankable player: %w", tier.Amount, ErrPotMismatch)
		}
		winners = sortBySeatOrder(winners, seatOrder)

		share := tier.Amount / int64(len(winners))
		remainder := tier.Amount % int64(len(winners))
		for i, w := range winners {
			amount := share
			if int64(i) < remainder {
				amount++
			}
			winnings[w] += amount
			paid += amount
		}
	}
	if paid != p.total {
		return nil, fmt.Errorf("paid %d of %d contributed: %w", paid, p.total, ErrPotMismatch)
	}
	return winnings, nil
}

// Reset clears the ledger for the next hand.
func (p *Pot) Reset() {
	p.total = 0
	p.contributions = map[*Player]int64{}
	p.contributors = nil
}

func (p *Pot) levels() []int64 {
	seen := map[int64]bool{}
	levels := make([]int64, 0, len(p.contributions))
	for _, amount := range p.contributions {
		if amount > 0 && !seen[amount] {
			seen[amount] = true
			levels = append(levels, amount)
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

func (p *Pot) soleSurvivor() (*Player, bool) {
	var last *Player
	for _, pl := range p.contributors {
		if pl.Folded {
			continue
		}
		if last != nil {
			return nil, false
		}
		last = pl
	}
	return last, last != nil
}

func tierWinners(tier Tier, best map[*Player]Hand) []*Player {
	var top Hand
	var winners []*Player
	for _, pl := range tier.Eligible {
		h, ok := best[pl]
		if !ok {
			continue
		}
		if len(winners) == 0 || h.BetterThan(top) {
			top = h
			winners = []*Player{pl}
		} else if h.Equal(top) {
			winners = append(winners, pl)
		}
	}
	return winners
}

// sortBySeatOrder rearranges winners to follow the given seat order so that
// odd chips land deterministically, closest to the left of the button first.
func sortBySeatOrder(winners []*Player, seatOrder []*Player) []*Player {
	if len(seatOrder) == 0 || len(winners) < 2 {
		return winners
	}
	pos := make(map[*Player]int, len(seatOrder))
	for i, pl := range seatOrder {
		pos[pl] = i
	}
	sorted := make([]*Player, len(winners))
	copy(sorted, winners)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, iok := pos[sorted[i]]
		pj, jok := pos[sorted[j]]
		if iok && jok {
			return pi < pj
		}
		return iok
	})
	return sorted
}
