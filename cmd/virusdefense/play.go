package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-defense/internal/games/virusdefense"
	"github.com/vovakirdan/virus-defense/internal/platform/tui"
	"github.com/vovakirdan/virus-defense/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game directly, skipping the launcher.

Controls:
  Left/Right, A/D  - Move between lanes
  Space/Up/W       - Shoot
  Tab/Down/S       - Next weapon
  1-4              - Pick SpikyBall, Ball, Star or Arrow
  I                - Show the weapon key
  Enter            - Start / submit a quiz answer
  Esc              - Back to the title screen
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  virusdefense play
  virusdefense play --seed 42
  virusdefense play --config ./my-virusdefense.yaml
  virusdefense play --questions ./questions.yaml --volume 0.3`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	closeAudio := configureGame(logger, flagSound, flagVolume)
	defer closeAudio()

	game, err := registry.Create(virusdefense.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, runtimeConfig(), tui.ModelOptions{Store: store, Logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
