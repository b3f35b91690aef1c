package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/virus-defense/internal/audio"
	"github.com/vovakirdan/virus-defense/internal/core"
	"github.com/vovakirdan/virus-defense/internal/games/virusdefense"
	"github.com/vovakirdan/virus-defense/internal/quiz"
	"github.com/vovakirdan/virus-defense/internal/storage"
)

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame hands the CLI's collaborators to every game created after it.
// With sound off, or when no audio device opens, events go to a Nop sink.
// The returned func releases the audio device.
func configureGame(logger *log.Logger, sound bool, volume float64) func() {
	virusdefense.SetConfigPath(flagConfig)
	virusdefense.SetLogger(logger.WithPrefix("engine"))

	set, from := quiz.Resolve(flagQuestions, logger)
	virusdefense.SetQuestions(set)
	logger.Debug("questions ready", "source", from, "count", set.Count())

	virusdefense.SetAudio(audio.Nop{})
	if !sound {
		return func() {}
	}

	player := audio.NewPlayer(volume, logger.WithPrefix("audio"))
	if err := player.Start(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return func() {}
	}
	virusdefense.SetAudio(player)
	return player.Close
}

// openStore opens the session database, or returns nil when it cannot be
// used: the game still works without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		logger.Warn("could not open session database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
