package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/ai"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/engine"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

// printTable renders the current table: one box per opponent, the board and
// pot in the middle, and the hero's box with hole cards at the bottom.
func printTable(eng *engine.Engine, hero *game.Player, ctx ai.DecisionContext) {
	var opponents []pterm.Panel
	var heroPanel pterm.Panel
	for _, p := range eng.Table().Players() {
		if p == hero {
			heroPanel = pterm.Panel{Data: playerBox(p, true)}
			continue
		}
		opponents = append(opponents, pterm.Panel{Data: playerBox(p, false)})
	}
	board := pterm.Panel{Data: boardBox(ctx.Street, eng.Community(), ctx.PotTotal, ctx.ToCall)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		opponents,
		{board},
		{heroPanel},
	}).Render()
}

func playerBox(p *game.Player, showCards bool) string {
	hpadding := 4
	if showCards {
		hpadding = 8
	}
	box := pterm.DefaultBox.WithLeftPadding(hpadding).WithRightPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)

	status := pterm.LightGreen("Active")
	if p.Folded {
		status = pterm.LightRed("Folded")
	} else if p.AllIn {
		status = pterm.LightYellow("All-in")
	}

	cards := "? ?"
	if showCards {
		cards = cardsString(p.Hole)
	}
	body := pterm.Sprintf("%s\nBet: %d\nStack: %d\n%s", status, p.CurrentBet, p.Stack, pterm.BgGreen.Sprint(cards))
	return box.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s", body)
}

func boardBox(street game.Street, board []game.Card, pot, toCall int64) string {
	line := pterm.Sprintf("%s | board: %s | pot: %d", street, cardsString(board), pot)
	if toCall > 0 {
		line += pterm.Sprintf(" | to call: %d", toCall)
	}
	return pterm.BgGreen.Sprint("\n " + line + " \n")
}

// printShowdown shows the final board, every payout and the winning hands.
func printShowdown(eng *engine.Engine, result *engine.HandResult) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	var b strings.Builder
	b.WriteString(pterm.Sprintfln("board: %s", cardsString(result.Board)))
	b.WriteString(pterm.Sprintfln("pot: %d", result.PotTotal))
	for _, p := range eng.Table().Players() {
		amount, won := result.Winnings[p.ID]
		if !won || amount == 0 {
			continue
		}
		b.WriteString(pterm.Sprintfln("%s wins %d with %s", pterm.LightCyan(p.Name), amount, cardsString(p.Hole)))
	}
	pterm.Println(box.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprintf("%s", b.String()))
}

func cardsString(cards []game.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
