package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-defense/internal/games/virusdefense"
	"github.com/vovakirdan/virus-defense/internal/platform/tui"
	"github.com/vovakirdan/virus-defense/internal/registry"
)

// runMenu loops between the launcher, the game and the scoreboard until
// the user quits.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	closeAudio := configureGame(logger, flagSound, flagVolume)
	defer closeAudio()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			game, err := registry.Create(virusdefense.ID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}

			// Fresh seed per game unless pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			goBack, err := tui.Run(game, cfg, tui.ModelOptions{Store: store, Logger: logger})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
