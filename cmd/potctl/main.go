// potctl replays a betting scenario from JSON and prints the derived pot
// tiers and, when hands are given, the showdown distribution. It exists so
// pot math can be checked from the command line without running a game.
//
// Usage: potctl [scenario.json]   (reads stdin when no file is given)
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/metacoder87/Holdem-Trainer-sub000/internal/config"
	"github.com/metacoder87/Holdem-Trainer-sub000/internal/logging"
)

func main() {
	logCfg, err := config.LoadLog()
	if err == nil {
		if logCfg.Level == "info" {
			logCfg.Level = zerolog.WarnLevel.String()
		}
		logging.Init(logCfg)
	}

	in := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "potctl:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "potctl:", err)
		os.Exit(1)
	}
}
