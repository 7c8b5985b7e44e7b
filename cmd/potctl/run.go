package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
)

// scenario is the CLI input. Players are listed in seat order with the
// dealer first. Either contributions are given directly, or a street of
// actions is replayed through the betting round to produce them.
type scenario struct {
	BigBlind   int64               `json:"big_blind"`
	FixedLimit bool                `json:"fixed_limit"`
	Street     string              `json:"street"`
	Players    []scenarioPlayer    `json:"players"`
	Actions    []scenarioAction    `json:"actions"`
	Hands      map[string][]string `json:"hands"`
}

type scenarioPlayer struct {
	Name         string `json:"name"`
	Stack        int64  `json:"stack"`
	Contribution int64  `json:"contribution"`
	Folded       bool   `json:"folded"`
}

type scenarioAction struct {
	Player string `json:"player"`
	Action string `json:"action"`
	Amount int64  `json:"amount"`
}

func run(in io.Reader, out io.Writer) error {
	var sc scenario
	if err := json.NewDecoder(in).Decode(&sc); err != nil {
		return fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Players) == 0 {
		return fmt.Errorf("no players in scenario")
	}

	table := game.NewTable()
	pot := game.NewPot()
	byName := map[string]*game.Player{}
	for _, sp := range sc.Players {
		if sp.Name == "" {
			return fmt.Errorf("player with empty name")
		}
		if sp.Contribution < 0 {
			return fmt.Errorf("negative contribution for %s", sp.Name)
		}
		p := game.NewPlayer(sp.Name, sp.Name, sp.Stack)
		p.Folded = sp.Folded
		if err := table.Seat(p); err != nil {
			return err
		}
		byName[sp.Name] = p
		if sp.Contribution > 0 {
			if err := pot.Add(p, sp.Contribution); err != nil {
				return err
			}
			p.TotalBet = sp.Contribution
		}
	}

	if len(sc.Actions) > 0 {
		if err := replayStreet(&sc, table, pot, byName); err != nil {
			return err
		}
	}

	printTiers(out, pot)

	if len(sc.Hands) > 0 {
		return printDistribution(out, &sc, table, pot, byName)
	}
	return nil
}

func replayStreet(sc *scenario, table *game.Table, pot *game.Pot, byName map[string]*game.Player) error {
	street := game.Street(sc.Street)
	if street == "" {
		street = game.StreetFlop
	}
	bigBlind := sc.BigBlind
	if bigBlind == 0 {
		bigBlind = 10
	}
	round := game.NewRound(table, pot, street, bigBlind, sc.FixedLimit)
	for _, sa := range sc.Actions {
		p, ok := byName[sa.Player]
		if !ok {
			return fmt.Errorf("unknown player %q in actions", sa.Player)
		}
		req := game.Action{Type: game.ActionType(sa.Action), Amount: sa.Amount}
		switch req.Type {
		case game.ActionFold, game.ActionCheck, game.ActionCall, game.ActionRaise, game.ActionAllIn:
		default:
			return fmt.Errorf("unknown action %q", sa.Action)
		}
		if _, _, err := round.Apply(p, req); err != nil {
			return err
		}
	}
	return nil
}

func printTiers(out io.Writer, pot *game.Pot) {
	fmt.Fprintf(out, "total pot: %d\n", pot.Total())
	for i, tier := range pot.Tiers() {
		names := make([]string, 0, len(tier.Eligible))
		for _, p := range tier.Eligible {
			names = append(names, p.Name)
		}
		label := "main pot"
		if i > 0 {
			label = fmt.Sprintf("side pot %d", i)
		}
		fmt.Fprintf(out, "%s: %d (eligible: %s)\n", label, tier.Amount, strings.Join(names, ", "))
	}
}

func printDistribution(out io.Writer, sc *scenario, table *game.Table, pot *game.Pot, byName map[string]*game.Player) error {
	best := map[*game.Player]game.Hand{}
	for name, cardStrs := range sc.Hands {
		p, ok := byName[name]
		if !ok {
			return fmt.Errorf("unknown player %q in hands", name)
		}
		cards, err := game.ParseCards(cardStrs)
		if err != nil {
			return err
		}
		h, err := game.BestHand(cards)
		if err != nil {
			return err
		}
		best[p] = h
		fmt.Fprintf(out, "%s: %s\n", name, h)
	}

	winnings, err := pot.Distribute(best, table.ShowdownOrder())
	if err != nil {
		return err
	}

	names := make([]*game.Player, 0, len(winnings))
	for p := range winnings {
		names = append(names, p)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })
	for _, p := range names {
		fmt.Fprintf(out, "%s wins %d\n", p.Name, winnings[p])
	}
	return nil
}
