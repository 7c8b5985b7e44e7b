package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/rs/zerolog/log"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/ai"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/config"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/engine"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/game"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/logging"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/store"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	// The terminal belongs to pterm; keep zerolog quiet unless asked for.
	if logCfg.File == "" {
		logCfg.Level = "error"
	}
	logging.Init(logCfg)

	cfg, err := config.LoadTrainer()
	if err != nil {
		log.Fatal().Err(err).Msg("load trainer config failed")
	}

	title, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Holdem ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Trainer", pterm.FgDarkGray.ToStyle()),
	).Srender()
	pterm.Print(title)

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter your name").
		WithDefaultValue(cfg.PlayerName).Show()
	pterm.Println()

	ctx := context.Background()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	var recorder engine.HandRecorder
	tableID := uuid.NewString()
	if cfg.PostgresDSN != "" {
		st, err := store.New(cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("store init failed")
		}
		defer st.Close()
		tableID, err = st.CreateTable(ctx, "trainer", cfg.SmallBlind, cfg.BigBlind, cfg.FixedLimit)
		if err != nil {
			log.Fatal().Err(err).Msg("create table failed")
		}
		recorder = st
		pterm.Info.Printfln("Recording hands to table %s", tableID)
	}

	eng := engine.New(engine.Config{
		TableID:    tableID,
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		FixedLimit: cfg.FixedLimit,
	}, rnd, recorder, log.Logger.With().Str("component", "trainer").Logger())

	hero := game.NewPlayer(uuid.NewString(), name, cfg.StartingStack)
	if err := eng.Sit(hero, &humanDecider{eng: eng, hero: hero}); err != nil {
		log.Fatal().Err(err).Msg("seat hero failed")
	}

	opponents := cfg.Opponents
	if opponents < 1 {
		opponents = 1
	}
	if opponents > game.MaxSeats-1 {
		opponents = game.MaxSeats - 1
	}
	for i := 0; i < opponents; i++ {
		style := ai.Styles[rnd.Intn(len(ai.Styles))]
		bot := game.NewPlayer(uuid.NewString(), botName(style, i+1), cfg.StartingStack)
		if err := eng.Sit(bot, ai.New(style, rnd)); err != nil {
			log.Fatal().Err(err).Msg("seat opponent failed")
		}
	}

	playLoop(ctx, eng, hero)

	pterm.Println("Thanks for playing.")
}

func playLoop(ctx context.Context, eng *engine.Engine, hero *game.Player) {
	for {
		result, err := eng.PlayHand(ctx)
		if err != nil {
			if err == engine.ErrNotEnoughPlayers {
				pterm.Success.Println("You are the last player standing. Congratulations!")
				return
			}
			log.Error().Err(err).Msg("hand failed")
			return
		}
		printShowdown(eng, result)

		for _, p := range eng.Table().Players() {
			if p.Stack == 0 {
				if p == hero {
					pterm.Error.Println("You are out of chips. Better luck next time!")
					return
				}
				pterm.Info.Printfln("%s is eliminated", p.Name)
				eng.Table().Remove(p.Seat)
			}
		}
		if len(eng.Table().Players()) < 2 {
			pterm.Success.Println("You are the last player standing. Congratulations!")
			return
		}

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Deal the next hand?").
			WithDefaultValue(true).Show()
		if !again {
			return
		}
		pterm.Println()
	}
}

func botName(style ai.Style, n int) string {
	return pterm.Sprintf("%s-%d", style, n)
}
