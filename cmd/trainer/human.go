package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/ai"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/engine"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

// humanDecider prompts the player at the terminal. Whatever it returns is
// normalized by the betting round, so a typo can only downgrade the action,
// never break the hand.
type humanDecider struct {
	eng  *engine.Engine
	hero *game.Player
}

func (h *humanDecider) Decide(ctx ai.DecisionContext) game.Action {
	printTable(h.eng, h.hero, ctx)

	options := []string{"Fold"}
	if ctx.CanCheck {
		options = append(options, "Check")
	} else {
		options = append(options, pterm.Sprintf("Call %d", ctx.ToCall))
	}
	if ctx.CanRaise && ctx.Stack > ctx.ToCall {
		if ctx.FixedBet > 0 {
			options = append(options, pterm.Sprintf("Raise %d", ctx.FixedBet))
		} else {
			options = append(options, "Raise")
		}
	}
	options = append(options, "All-in")

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your action").
		WithOptions(options).Show()

	switch {
	case choice == "Fold":
		return game.Action{Type: game.ActionFold}
	case choice == "Check":
		return game.Action{Type: game.ActionCheck}
	case choice == "All-in":
		return game.Action{Type: game.ActionAllIn}
	case len(choice) >= 5 && choice[:5] == "Raise":
		return game.Action{Type: game.ActionRaise, Amount: h.raiseTarget(ctx)}
	default:
		return game.Action{Type: game.ActionCall}
	}
}

// raiseTarget asks for the raise-to total in a no-limit game. Fixed-limit
// raises are sized by the round itself, so no prompt is needed there.
func (h *humanDecider) raiseTarget(ctx ai.DecisionContext) int64 {
	if ctx.FixedBet > 0 {
		return ctx.HighestBet + ctx.FixedBet
	}
	minTarget := ctx.HighestBet + ctx.MinRaise
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Raise to (min %d)", minTarget)).
			WithDefaultValue(strconv.FormatInt(minTarget, 10)).Show()
		target, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || target <= 0 {
			pterm.Error.Println("Enter a positive number of chips.")
			continue
		}
		return target
	}
}
