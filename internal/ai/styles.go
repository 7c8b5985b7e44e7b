package ai

import (
	"math/rand"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

// Cautious folds marginal hands, rarely bluffs and only raises near the top
// of its range.
type Cautious struct {
	rnd *rand.Rand
}

func (c *Cautious) Decide(ctx DecisionContext) game.Action {
	strength := handStrength(ctx)
	strength += 0.05 * float64(ctx.Seat) / 9 // late position plays a touch wider

	if strength > 0.95 && ctx.Stack > 0 {
		return game.Action{Type: game.ActionAllIn}
	}

	if ctx.Street == game.StreetPreflop {
		switch {
		case strength < 0.4:
			if ctx.CanCheck {
				return game.Action{Type: game.ActionCheck}
			}
			return game.Action{Type: game.ActionFold}
		case strength < 0.7:
			if ctx.ToCall <= ctx.Stack/20 {
				return game.Action{Type: game.ActionCall}
			}
			return game.Action{Type: game.ActionFold}
		default:
			if c.rnd.Float64() < 0.3 && ctx.CanRaise {
				target := minInt64(ctx.HighestBet+ctx.MinRaise, ctx.Stack/10+ctx.CurrentBet)
				target = roundToNearest5(target)
				if target > ctx.HighestBet {
					return game.Action{Type: game.ActionRaise, Amount: target}
				}
			}
			return game.Action{Type: game.ActionCall}
		}
	}

	if ctx.CanCheck {
		if strength > 0.6 && c.rnd.Float64() < 0.4 && ctx.CanRaise {
			bet := minInt64(ctx.PotTotal*3/10, ctx.Stack/20)
			if bet == 0 {
				bet = ctx.BigBlind
			}
			bet = roundToNearest5(bet)
			if bet > 0 {
				return game.Action{Type: game.ActionRaise, Amount: bet}
			}
		}
		return game.Action{Type: game.ActionCheck}
	}

	potOdds := 0.0
	if ctx.PotTotal+ctx.ToCall > 0 {
		potOdds = float64(ctx.ToCall) / float64(ctx.PotTotal+ctx.ToCall)
	}
	if strength < potOdds {
		return game.Action{Type: game.ActionFold}
	}
	if strength > 0.8 && c.rnd.Float64() < 0.25 && ctx.CanRaise {
		target := minInt64(ctx.HighestBet+ctx.MinRaise, ctx.Stack/10+ctx.CurrentBet)
		target = roundToNearest5(target)
		if target > ctx.HighestBet {
			return game.Action{Type: game.ActionRaise, Amount: target}
		}
	}
	return game.Action{Type: game.ActionCall}
}

// Wild bluffs often, raises aggressively and hates folding.
type Wild struct {
	rnd *rand.Rand
}

func (w *Wild) Decide(ctx DecisionContext) game.Action {
	roll := w.rnd.Float64()

	if roll < 0.05 && ctx.Stack > 0 {
		return game.Action{Type: game.ActionAllIn}
	}

	if ctx.CanCheck {
		if roll < 0.6 && ctx.CanRaise {
			bet := minInt64(int64(float64(ctx.PotTotal)*(0.5+w.rnd.Float64()*0.7)), ctx.Stack/5)
			if bet == 0 {
				bet = ctx.BigBlind
			}
			bet = roundToNearest5(bet)
			if bet > 0 {
				return game.Action{Type: game.ActionRaise, Amount: bet}
			}
		}
		return game.Action{Type: game.ActionCheck}
	}

	if roll < 0.3 && ctx.CanRaise {
		target := minInt64(int64(float64(ctx.HighestBet)*(2+w.rnd.Float64())), ctx.Stack*3/10+ctx.CurrentBet)
		target = roundToNearest5(target)
		if target > ctx.HighestBet+ctx.MinRaise {
			return game.Action{Type: game.ActionRaise, Amount: target}
		}
	}
	if roll < 0.7 {
		return game.Action{Type: game.ActionCall}
	}
	if w.hasAnyPotential(ctx) {
		return game.Action{Type: game.ActionCall}
	}
	return game.Action{Type: game.ActionFold}
}

// Wild players see potential everywhere: any face card, suited or nearly
// connected hole cards keep them in.
func (w *Wild) hasAnyPotential(ctx DecisionContext) bool {
	if len(ctx.Hole) != 2 {
		return false
	}
	for _, c := range ctx.Hole {
		if c.Value() >= int(game.Jack) {
			return true
		}
	}
	if ctx.Hole[0].Suit == ctx.Hole[1].Suit {
		return true
	}
	if gap(ctx.Hole[0], ctx.Hole[1]) <= 3 {
		return true
	}
	return w.rnd.Float64() < 0.4
}

// Balanced weighs pot odds against a rough equity estimate.
type Balanced struct {
	rnd *rand.Rand
}

func (b *Balanced) Decide(ctx DecisionContext) game.Action {
	potOdds := 0.0
	if ctx.ToCall > 0 && ctx.PotTotal+ctx.ToCall > 0 {
		potOdds = float64(ctx.ToCall) / float64(ctx.PotTotal+ctx.ToCall)
	}
	equity := b.estimateEquity(ctx)

	if equity > 0.9 && potOdds < 0.5 && ctx.Stack > 0 {
		return game.Action{Type: game.ActionAllIn}
	}

	if ctx.CanCheck {
		if equity > 0.6 && ctx.CanRaise {
			bet := int64(float64(ctx.PotTotal) * (0.5 + equity*0.5))
			if bet == 0 {
				bet = ctx.BigBlind
			}
			bet = roundToNearest5(minInt64(bet, ctx.Stack*15/100))
			if bet > 0 {
				return game.Action{Type: game.ActionRaise, Amount: bet}
			}
		}
		if equity > 0.4 && float64(ctx.Seat)/9 > 0.6 && b.rnd.Float64() < 0.3 && ctx.CanRaise {
			bet := roundToNearest5(minInt64(ctx.PotTotal*3/10, ctx.Stack/10))
			if bet == 0 {
				bet = ctx.BigBlind
			}
			if bet > 0 {
				return game.Action{Type: game.ActionRaise, Amount: bet}
			}
		}
		return game.Action{Type: game.ActionCheck}
	}

	switch {
	case equity > potOdds+0.1:
		if b.rnd.Float64() < equity*0.5 && ctx.CanRaise {
			target := ctx.HighestBet + int64(float64(ctx.MinRaise)*(1+equity))
			target = roundToNearest5(minInt64(target, ctx.Stack/5+ctx.CurrentBet))
			if target > ctx.HighestBet {
				return game.Action{Type: game.ActionRaise, Amount: target}
			}
		}
		return game.Action{Type: game.ActionCall}
	case equity > potOdds-0.05:
		return game.Action{Type: game.ActionCall}
	default:
		return game.Action{Type: game.ActionFold}
	}
}

func (b *Balanced) estimateEquity(ctx DecisionContext) float64 {
	strength := handStrength(ctx)
	equity := strength
	for i := 1; i < ctx.PlayersInHand-1; i++ {
		equity *= strength
	}
	return equity
}

// Random plays like a beginner: mostly noise, occasionally brilliant.
type Random struct {
	rnd *rand.Rand
}

func (r *Random) Decide(ctx DecisionContext) game.Action {
	roll := r.rnd.Float64()

	if roll < 0.02 && ctx.Stack > 0 {
		return game.Action{Type: game.ActionAllIn}
	}

	if ctx.CanCheck {
		if roll < 0.6 || !ctx.CanRaise {
			return game.Action{Type: game.ActionCheck}
		}
		bet := ctx.BigBlind
		if ctx.PotTotal > 0 {
			bet = int64(float64(ctx.PotTotal) * (0.1 + r.rnd.Float64()*0.4))
		}
		bet = roundToNearest5(minInt64(bet, ctx.Stack/5))
		if bet == 0 {
			return game.Action{Type: game.ActionCheck}
		}
		return game.Action{Type: game.ActionRaise, Amount: bet}
	}

	switch {
	case roll < 0.25:
		return game.Action{Type: game.ActionFold}
	case roll < 0.6 || !ctx.CanRaise:
		return game.Action{Type: game.ActionCall}
	default:
		target := int64(float64(ctx.HighestBet) * (1.5 + r.rnd.Float64()*1.5))
		target = roundToNearest5(minInt64(target, ctx.Stack*3/10+ctx.CurrentBet))
		if target > ctx.HighestBet+ctx.MinRaise {
			return game.Action{Type: game.ActionRaise, Amount: target}
		}
		return game.Action{Type: game.ActionCall}
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
