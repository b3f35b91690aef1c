// virusdefense is a terminal lane-defense game: stop falling viruses with the
// one weapon each is weak to, and answer quiz questions between bursts.
//
// Usage:
//
//	virusdefense                 - Start the launcher menu
//	virusdefense play            - Play a game directly
//	virusdefense serve           - Start SSH server for remote play
//	virusdefense scores          - Show recorded sessions and stats
//	virusdefense questions       - List or validate a question file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.virusdefense/sessions.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination for terminal play
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-defense/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by the launcher, play and serve
	flagConfig    string
	flagQuestions string
	flagSound     bool
	flagVolume    float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "virusdefense",
	Short: "Virus Defense - hold the line against falling viruses",
	Long: `Virus Defense is a terminal game. Viruses fall down the lanes; each
type is destroyed by two hits from the one weapon it is weak to. Let one
reach the bottom and you lose a life. Every so often play stops for a quiz
question: a wrong answer costs a life too.

Available commands:
  play       - Start a game directly
  serve      - Start SSH server for remote play
  scores     - View recorded sessions
  questions  - List or validate a question file

Running without a command opens the launcher menu.

Examples:
  virusdefense
  virusdefense play --questions ./questions.json
  virusdefense serve --ssh :2222
  virusdefense scores top`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.virusdefense/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal play (default ~/.virusdefense/virusdefense.log)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagQuestions, "questions", "", "Path to a question file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(questionsCmd)
}

// newLogger builds the process logger. The alternate screen owns the
// terminal during play, so terminal sessions log to a file; serve logs to
// stderr. The returned func closes the file.
func newLogger(toStderr bool) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if !toStderr {
		path := flagLogFile
		if path == "" {
			path = filepath.Join(config.DataDir(), "virusdefense.log")
		}
		w = io.Discard
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "virusdefense",
		Level:           level,
	})
	return logger, closeFn
}
