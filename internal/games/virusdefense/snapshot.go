package virusdefense

import (
	"math"
	"time"

	"github.com/vovakirdan/virus-defense/internal/clock"
)

// OverlayLevels holds the current intensity of every effect.
type OverlayLevels struct {
	Darken        float64
	RoundFlash    float64
	LifeLossFlash float64
	Shake         float64
	Scroll        float64
	ShakeOffset   int
}

// TimerState reports which timers are armed.
type TimerState struct {
	Tick   bool
	Spawn  bool
	Quiz   bool
	Result bool
}

// Any reports whether any timer is armed.
func (t TimerState) Any() bool {
	return t.Tick || t.Spawn || t.Quiz || t.Result
}

// Snapshot is a deep, read-only copy of the engine state. Renderers and
// tests only look at the game through it.
type Snapshot struct {
	Mode  Mode
	Lives int
	Score int
	Tick  uint64

	Player      Player
	Viruses     []Virus
	Projectiles []Projectile
	Weapon      WeaponType
	ShowKey     bool

	Round         int
	Spawned       int
	Required      int
	Speed         float64
	SpawnInterval time.Duration
	Phase         RoundPhase

	Overlay OverlayLevels

	QuizPhase   QuizPhase
	QuestionID  string
	Question    string
	Input       string
	LastCorrect bool
	QuizAsked   int
	QuizCorrect int

	Timers TimerState

	Width     int
	Height    int
	LaneWidth int
	Lanes     int
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.s
	pf := e.cfg.Playfield
	return Snapshot{
		Mode:  s.mode,
		Lives: s.lives,
		Score: s.score,
		Tick:  s.tick,

		Player:      s.player,
		Viruses:     append([]Virus(nil), s.viruses...),
		Projectiles: append([]Projectile(nil), s.weapons.Projectiles...),
		Weapon:      s.weapons.Current,
		ShowKey:     s.showKey,

		Round:         s.round.Round,
		Spawned:       s.round.Spawned,
		Required:      s.round.Required,
		Speed:         s.round.Speed(),
		SpawnInterval: s.round.SpawnInterval(),
		Phase:         s.round.Phase(len(s.viruses)),

		Overlay: OverlayLevels{
			Darken:        s.overlay.Intensity(EffectDarken),
			RoundFlash:    s.overlay.Intensity(EffectRoundFlash),
			LifeLossFlash: s.overlay.Intensity(EffectLifeLossFlash),
			Shake:         s.overlay.Intensity(EffectShake),
			Scroll:        s.overlay.Intensity(EffectScroll),
			ShakeOffset:   s.overlay.ShakeOffset(s.tick),
		},

		QuizPhase:   s.quiz.Phase,
		QuestionID:  s.quiz.Question.ID,
		Question:    s.quiz.Question.Text,
		Input:       s.quiz.Input,
		LastCorrect: s.quiz.Correct,
		QuizAsked:   s.quiz.Asked,
		QuizCorrect: s.quiz.Right,

		Timers: TimerState{
			Tick:   active(e.tickTimer),
			Spawn:  active(e.spawnTimer),
			Quiz:   active(e.quizTimer),
			Result: active(e.resultTimer),
		},

		Width:     pf.Width,
		Height:    pf.Height,
		LaneWidth: pf.LaneWidth(),
		Lanes:     pf.Lanes,
	}
}

func active(t clock.Timer) bool {
	return t != nil && t.Active()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation
	mixFloat := func(v float64) { mix(math.Float64bits(v)) }

	mixInt(int(snap.Mode))
	mixInt(snap.Lives)
	mixInt(snap.Score)
	mixInt(snap.Player.X)
	mixInt(snap.Player.Y)
	mixInt(int(snap.Weapon))
	mixInt(snap.Round)
	mixInt(snap.Spawned)
	mixInt(snap.Required)
	mixInt(int(snap.QuizPhase))
	mixInt(snap.QuizAsked)
	mixInt(snap.QuizCorrect)

	for _, v := range snap.Viruses {
		mixInt(v.X)
		mixFloat(v.Y)
		mixFloat(v.Speed)
		mixInt(int(v.Type))
		mixInt(v.Hits)
	}
	for _, p := range snap.Projectiles {
		mixFloat(p.X)
		mixFloat(p.Y)
		mixInt(int(p.Weapon))
	}

	mixFloat(snap.Overlay.Darken)
	mixFloat(snap.Overlay.RoundFlash)
	mixFloat(snap.Overlay.LifeLossFlash)
	mixFloat(snap.Overlay.Shake)
	mixFloat(snap.Overlay.Scroll)

	for _, r := range snap.Input {
		mixInt(int(r))
	}
	return h
}
