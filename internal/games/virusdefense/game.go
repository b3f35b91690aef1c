package virusdefense

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/virus-defense/internal/clock"
	"github.com/vovakirdan/virus-defense/internal/config"
	"github.com/vovakirdan/virus-defense/internal/core"
	"github.com/vovakirdan/virus-defense/internal/quiz"
	"github.com/vovakirdan/virus-defense/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "virusdefense"

// Minimum terminal size the renderer needs.
const (
	MinScreenW = 50
	MinScreenH = 18
)

// Collaborators set from the CLI before the platform creates the game.
var (
	configPath  string
	questionSrc quiz.Source
	audioSink   AudioSink
	logger      *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetQuestions sets the question source. Nil selects the fallback set.
func SetQuestions(src quiz.Source) {
	questionSrc = src
}

// SetAudio sets the sink for sound events.
func SetAudio(a AudioSink) {
	audioSink = a
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts the Engine to the platform's fixed-step loop. It owns a
// virtual clock: each Step applies the frame's input and then advances the
// clock by one frame, firing the engine's tick, spawn and quiz timers
// deterministically on the caller's goroutine.
type Game struct {
	engine  *Engine
	clock   *clock.Clock
	runtime core.RuntimeConfig
	frame   time.Duration

	screenTooSmall bool
}

// New creates a game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Virus Defense" }

// Reset discards any session and shows the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadVirusDefense(configPath)
	if err != nil && logger != nil {
		logger.Warn("using default config", "err", err)
	}

	rate := runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)
	g.clock = clock.New()
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.engine = NewEngine(Options{
		Config:    cfg,
		Questions: questionSrc,
		Clock:     g.clock,
		Audio:     audioSink,
		Logger:    logger,
		Seed:      runtime.Seed,
	})
}

// Resize records a new terminal size without touching the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Engine exposes the orchestrator driven by this game.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies one frame of input, then advances virtual time by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.clock.Advance(g.frame)

	return core.StepResult{State: g.State()}
}

var weaponKeys = map[core.Action]WeaponType{
	core.ActionWeapon1: WeaponSpikyBall,
	core.ActionWeapon2: WeaponBall,
	core.ActionWeapon3: WeaponStar,
	core.ActionWeapon4: WeaponArrow,
}

func (g *Game) applyInput(in core.InputFrame) {
	e := g.engine

	switch e.Mode() {
	case ModeHome:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionShoot) {
			e.StartGame()
		}

	case ModePlaying:
		if in.Has(core.ActionBack) {
			e.ReturnToHome()
			return
		}
		if in.Has(core.ActionLeft) {
			e.MoveLeft()
		}
		if in.Has(core.ActionRight) {
			e.MoveRight()
		}
		if in.Has(core.ActionSwitchWeapon) {
			e.SwitchWeapon()
		}
		for _, a := range []core.Action{core.ActionWeapon1, core.ActionWeapon2, core.ActionWeapon3, core.ActionWeapon4} {
			if in.Has(a) {
				e.SelectWeapon(weaponKeys[a])
			}
		}
		if in.Has(core.ActionToggleKey) {
			e.ToggleWeaponKey()
		}
		if in.Has(core.ActionShoot) {
			e.Shoot()
		}

	case ModeQuiz:
		if in.Has(core.ActionBack) {
			e.ReturnToHome()
			return
		}
		for _, r := range in.Text {
			e.AppendChar(r)
		}
		if in.Has(core.ActionBackspace) {
			e.Backspace()
		}
		if in.Has(core.ActionConfirm) {
			e.SubmitAnswer()
		}

	case ModeGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			e.StartGame()
		case in.Has(core.ActionBack):
			e.ReturnToHome()
		}
	}
}

// State returns the platform-visible state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	snap := g.engine.Snapshot()
	st := core.GameState{
		Score:     snap.Score,
		Lives:     snap.Lives,
		GameOver:  snap.Mode == ModeGameOver,
		Paused:    snap.Mode == ModeQuiz,
		TextInput: snap.Mode == ModeQuiz && snap.QuizPhase == QuizAwaitingAnswer,

		QuizAsked:   snap.QuizAsked,
		QuizCorrect: snap.QuizCorrect,
		Ticks:       snap.Tick,
	}
	if snap.Mode != ModeHome {
		st.Round = snap.Round
	}
	return st
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
