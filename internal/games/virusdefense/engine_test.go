package virusdefense

import (
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/virus-defense/internal/clock"
	"github.com/vovakirdan/virus-defense/internal/config"
	"github.com/vovakirdan/virus-defense/internal/quiz"
)

type recordingAudio struct {
	events []string
}

func (a *recordingAudio) Play(event string) {
	a.events = append(a.events, event)
}

func (a *recordingAudio) count(event string) int {
	n := 0
	for _, e := range a.events {
		if e == event {
			n++
		}
	}
	return n
}

type panicSource struct{}

func (panicSource) Count() int { return 1 }

func (panicSource) Random(quiz.Rand) quiz.Question { panic("question store unavailable") }

// failingWriter panics on its first write once armed.
type failingWriter struct {
	armed bool
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.armed {
		w.armed = false
		panic("log sink failed")
	}
	return len(p), nil
}

type harness struct {
	e       *Engine
	clk     *clock.Clock
	audio   *recordingAudio
	results []Result
}

// noQuizConfig keeps the quiz timer out of the way of short scenarios.
func noQuizConfig() config.VirusDefenseConfig {
	cfg := config.DefaultVirusDefenseConfig()
	cfg.Quiz.MinDelayMS = 10 * 60 * 1000
	cfg.Quiz.MaxDelayMS = cfg.Quiz.MinDelayMS + 1
	return cfg
}

func newHarness(cfg config.VirusDefenseConfig, src quiz.Source) *harness {
	h := &harness{clk: clock.New(), audio: &recordingAudio{}}
	h.e = NewEngine(Options{
		Config:     cfg,
		Questions:  src,
		Clock:      h.clk,
		Audio:      h.audio,
		Seed:       1,
		OnGameOver: func(r Result) { h.results = append(h.results, r) },
	})
	return h
}

// step advances virtual time in master tick increments.
func (h *harness) step(d time.Duration) {
	tick := h.e.Config().Session.TickInterval()
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		h.clk.Advance(tick)
	}
}

// aim lines the player up under the lowest virus with its weakness selected
// and fires.
func (h *harness) aim() {
	snap := h.e.Snapshot()
	if len(snap.Viruses) == 0 {
		return
	}
	target := snap.Viruses[0]
	for _, v := range snap.Viruses[1:] {
		if v.Y > target.Y {
			target = v
		}
	}
	for i := 0; i < snap.Lanes && snap.Player.X > target.X; i++ {
		h.e.MoveLeft()
		snap.Player.X -= snap.LaneWidth
	}
	for i := 0; i < snap.Lanes && snap.Player.X < target.X; i++ {
		h.e.MoveRight()
		snap.Player.X += snap.LaneWidth
	}
	h.e.SelectWeapon(target.Type.Weakness())
	h.e.Shoot()
}

func (h *harness) answer(text string) {
	for _, r := range text {
		h.e.AppendChar(r)
	}
	h.e.SubmitAnswer()
}

func TestEngineStartsOnHome(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)

	snap := h.e.Snapshot()
	if snap.Mode != ModeHome {
		t.Errorf("Mode = %s, expected home", snap.Mode)
	}
	if snap.Timers.Any() {
		t.Errorf("timers armed on home screen: %+v", snap.Timers)
	}

	h.e.MoveLeft()
	h.e.Shoot()
	h.e.SwitchWeapon()
	h.step(time.Second)

	snap = h.e.Snapshot()
	if snap.Player.X != 300 || len(snap.Projectiles) != 0 || snap.Weapon != WeaponBall {
		t.Errorf("input applied on home screen: %+v", snap.Player)
	}
	if snap.Tick != 0 {
		t.Errorf("Tick = %d on home screen, expected 0", snap.Tick)
	}
}

func TestStartGame(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()

	snap := h.e.Snapshot()
	if snap.Mode != ModePlaying {
		t.Fatalf("Mode = %s, expected playing", snap.Mode)
	}
	if snap.Lives != 3 || snap.Score != 0 || snap.Round != 1 || snap.Required != 3 {
		t.Errorf("lives=%d score=%d round=%d required=%d", snap.Lives, snap.Score, snap.Round, snap.Required)
	}
	if !snap.Timers.Tick || !snap.Timers.Spawn || !snap.Timers.Quiz || snap.Timers.Result {
		t.Errorf("Timers = %+v, expected tick, spawn and quiz", snap.Timers)
	}
	if snap.Player.X != 300 || snap.Player.Y != 700 {
		t.Errorf("player at (%d, %d), expected (300, 700)", snap.Player.X, snap.Player.Y)
	}

	h.step(160 * time.Millisecond)
	tick := h.e.Snapshot().Tick
	if tick != 10 {
		t.Errorf("Tick = %d after 160ms, expected 10", tick)
	}

	// Ignored while a session is running
	h.e.StartGame()
	if got := h.e.Snapshot().Tick; got != tick {
		t.Errorf("StartGame during play restarted the session, tick %d", got)
	}
}

func TestSpawnCadence(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()

	h.clk.Advance(3999 * time.Millisecond)
	if n := len(h.e.Snapshot().Viruses); n != 0 {
		t.Fatalf("%d viruses before the first interval", n)
	}

	h.clk.Advance(time.Millisecond)
	snap := h.e.Snapshot()
	if len(snap.Viruses) != 1 || snap.Spawned != 1 {
		t.Fatalf("viruses=%d spawned=%d after 4s, expected 1/1", len(snap.Viruses), snap.Spawned)
	}
	v := snap.Viruses[0]
	if v.X != 100 && v.X != 300 && v.X != 500 {
		t.Errorf("virus X = %d, expected a lane center", v.X)
	}
	if v.Speed != 1.0 || v.Hits != 0 {
		t.Errorf("virus speed=%v hits=%d", v.Speed, v.Hits)
	}

	h.clk.Advance(8 * time.Second)
	snap = h.e.Snapshot()
	if snap.Spawned != 3 || len(snap.Viruses) != 3 {
		t.Fatalf("spawned=%d live=%d after 12s, expected 3/3", snap.Spawned, len(snap.Viruses))
	}
	if snap.Timers.Spawn {
		t.Error("spawn timer still armed after the round spawned its quota")
	}
	if snap.Phase != PhaseAwaitingClear {
		t.Errorf("Phase = %s, expected awaiting_clear", snap.Phase)
	}
}

func TestRoundOneClears(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()

	for i := 0; i < 200 && h.e.Snapshot().Round == 1; i++ {
		h.aim()
		h.clk.Advance(300 * time.Millisecond)
	}

	snap := h.e.Snapshot()
	if snap.Round != 2 {
		t.Fatalf("still in round %d (lives %d)", snap.Round, snap.Lives)
	}
	if snap.Required != 5 || snap.Spawned != 0 {
		t.Errorf("required=%d spawned=%d, expected 5/0", snap.Required, snap.Spawned)
	}
	if math.Abs(snap.Speed-1.3) > 1e-9 {
		t.Errorf("Speed = %v, expected 1.3", snap.Speed)
	}
	if snap.SpawnInterval != 3*time.Second {
		t.Errorf("SpawnInterval = %v, expected 3s", snap.SpawnInterval)
	}
	cfg := h.e.Config()
	if snap.Score != 3*cfg.Virus.Score || snap.Lives != 3 {
		t.Errorf("score=%d lives=%d, expected %d/3", snap.Score, snap.Lives, 3*cfg.Virus.Score)
	}
	if !snap.Timers.Spawn {
		t.Error("spawn timer not restarted for the new round")
	}

	if n := h.audio.count(SoundEffectiveHit); n != 6 {
		t.Errorf("%d effective hits, expected 6", n)
	}
	if n := h.audio.count(SoundVirusDestroyed); n != 3 {
		t.Errorf("%d viruses destroyed, expected 3", n)
	}
	if n := h.audio.count(SoundRoundComplete); n != 1 {
		t.Errorf("%d round completions, expected 1", n)
	}
}

func TestBreachCostsLifeWithFeedback(t *testing.T) {
	cfg := noQuizConfig()
	cfg.Playfield.Height = 100
	cfg.Player.BottomOffset = 20
	h := newHarness(cfg, nil)
	h.e.StartGame()
	h.e.SpawnVirus()

	for i := 0; i < 200 && h.e.Snapshot().Lives == 3; i++ {
		h.step(16 * time.Millisecond)
	}

	snap := h.e.Snapshot()
	if snap.Lives != 2 {
		t.Fatalf("Lives = %d, expected 2", snap.Lives)
	}
	if len(snap.Viruses) != 0 {
		t.Errorf("breached virus not removed: %+v", snap.Viruses)
	}
	if snap.Overlay.LifeLossFlash <= 0 || snap.Overlay.Shake <= 0 {
		t.Errorf("breach feedback missing: %+v", snap.Overlay)
	}
	if h.audio.count(SoundLifeLost) != 1 {
		t.Errorf("life_lost played %d times, expected 1", h.audio.count(SoundLifeLost))
	}
	if snap.Mode != ModePlaying {
		t.Errorf("Mode = %s, expected playing", snap.Mode)
	}
}

func TestSimultaneousBreachesEndGameOnce(t *testing.T) {
	cfg := noQuizConfig()
	cfg.Playfield.Height = 100
	cfg.Player.BottomOffset = 20
	cfg.Player.Lives = 2
	h := newHarness(cfg, nil)
	h.e.StartGame()
	h.e.SpawnVirus()
	h.e.SpawnVirus()
	h.e.SpawnVirus()

	for i := 0; i < 200 && h.e.Mode() == ModePlaying; i++ {
		h.step(16 * time.Millisecond)
	}

	snap := h.e.Snapshot()
	if snap.Mode != ModeGameOver {
		t.Fatalf("Mode = %s, expected game_over", snap.Mode)
	}
	if snap.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", snap.Lives)
	}
	if len(h.results) != 1 {
		t.Errorf("game over reported %d times, expected once", len(h.results))
	}
	if snap.Timers.Any() {
		t.Errorf("timers still armed after game over: %+v", snap.Timers)
	}

	// Nothing moves after game over
	tick := snap.Tick
	h.step(time.Second)
	if h.e.Snapshot().Tick != tick {
		t.Error("ticks continued after game over")
	}
}

func TestThreeWrongAnswersEndGame(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()

	for i := 0; i < 3; i++ {
		h.e.TriggerQuiz()
		snap := h.e.Snapshot()
		if snap.Mode != ModeQuiz || snap.QuizPhase != QuizAwaitingAnswer {
			t.Fatalf("round %d: mode=%s phase=%s, expected quiz awaiting answer", i, snap.Mode, snap.QuizPhase)
		}
		if snap.Timers.Tick || snap.Timers.Spawn {
			t.Errorf("round %d: play timers armed during quiz: %+v", i, snap.Timers)
		}
		if snap.Overlay.Darken <= 0 {
			t.Errorf("round %d: playfield not darkened", i)
		}

		h.answer("wrong")
		snap = h.e.Snapshot()
		if snap.Lives != 2-i {
			t.Errorf("round %d: Lives = %d, expected %d", i, snap.Lives, 2-i)
		}
		if snap.Overlay.Shake != 0 || snap.Overlay.LifeLossFlash != 0 {
			t.Errorf("round %d: quiz failure triggered breach feedback: %+v", i, snap.Overlay)
		}

		if i < 2 {
			if snap.QuizPhase != QuizShowingResult || !snap.Timers.Result {
				t.Fatalf("round %d: phase=%s result timer=%v", i, snap.QuizPhase, snap.Timers.Result)
			}
			h.clk.Advance(2 * time.Second)
			snap = h.e.Snapshot()
			if snap.Mode != ModePlaying || snap.QuizPhase != QuizIdle {
				t.Fatalf("round %d: mode=%s phase=%s after result display", i, snap.Mode, snap.QuizPhase)
			}
			if !snap.Timers.Tick || !snap.Timers.Spawn || !snap.Timers.Quiz {
				t.Errorf("round %d: timers not resumed: %+v", i, snap.Timers)
			}
		}
	}

	snap := h.e.Snapshot()
	if snap.Mode != ModeGameOver || snap.Lives != 0 {
		t.Fatalf("mode=%s lives=%d, expected game over with 0 lives", snap.Mode, snap.Lives)
	}
	if snap.QuizPhase != QuizIdle {
		t.Errorf("QuizPhase = %s after game over, expected idle", snap.QuizPhase)
	}
	if snap.Timers.Any() {
		t.Errorf("timers armed after game over: %+v", snap.Timers)
	}
	if len(h.results) != 1 || h.results[0].QuizAsked != 3 || h.results[0].QuizCorrect != 0 {
		t.Errorf("results = %+v", h.results)
	}
	if h.audio.count(SoundQuizWrong) != 3 || h.audio.count(SoundLifeLost) != 2 {
		t.Errorf("audio = %v", h.audio.events)
	}
}

func TestCorrectAnswerKeepsLives(t *testing.T) {
	h := newHarness(noQuizConfig(), quiz.Fallback())
	h.e.StartGame()
	h.e.TriggerQuiz()

	h.e.AppendChar('!')
	h.answer(quiz.FallbackAnswer)

	snap := h.e.Snapshot()
	if snap.Lives != 3 || !snap.LastCorrect {
		t.Errorf("lives=%d correct=%v, expected 3/true", snap.Lives, snap.LastCorrect)
	}
	if snap.Input != quiz.FallbackAnswer {
		t.Errorf("Input = %q, rejected rune was typed", snap.Input)
	}
	if h.audio.count(SoundQuizCorrect) != 1 {
		t.Errorf("audio = %v", h.audio.events)
	}

	h.e.FinishQuizResult()
	if h.e.Mode() != ModePlaying {
		t.Fatalf("Mode = %s, expected playing", h.e.Mode())
	}

	// The result timer firing afterwards is harmless.
	h.clk.Advance(2 * time.Second)
	snap = h.e.Snapshot()
	if snap.Mode != ModePlaying || snap.QuizPhase != QuizIdle || snap.QuizAsked != 1 {
		t.Errorf("mode=%s phase=%s asked=%d", snap.Mode, snap.QuizPhase, snap.QuizAsked)
	}
}

func TestQuizTimerPausesPlay(t *testing.T) {
	cfg := noQuizConfig()
	cfg.Quiz.MinDelayMS = 1000
	cfg.Quiz.MaxDelayMS = 2000
	h := newHarness(cfg, nil)
	h.e.StartGame()

	h.clk.Advance(2 * time.Second)
	snap := h.e.Snapshot()
	if snap.Mode != ModeQuiz {
		t.Fatalf("Mode = %s after max quiz delay, expected quiz", snap.Mode)
	}
	if snap.Timers.Tick || snap.Timers.Spawn || snap.Timers.Quiz {
		t.Errorf("timers = %+v during quiz", snap.Timers)
	}

	h.e.MoveLeft()
	h.e.Shoot()
	h.clk.Advance(10 * time.Second)
	after := h.e.Snapshot()
	if after.Tick != snap.Tick || after.Player.X != snap.Player.X || len(after.Projectiles) != 0 {
		t.Error("game advanced during quiz")
	}
	if after.Spawned != snap.Spawned {
		t.Error("viruses spawned during quiz")
	}
}

func TestSpawnNotResumedWhenRoundComplete(t *testing.T) {
	h := newHarness(noQuizConfig(), quiz.Fallback())
	h.e.StartGame()
	h.e.SpawnVirus()
	h.e.SpawnVirus()
	h.e.SpawnVirus()

	if h.e.Snapshot().Timers.Spawn {
		t.Fatal("spawn timer armed after quota")
	}

	h.e.TriggerQuiz()
	h.answer(quiz.FallbackAnswer)
	h.e.FinishQuizResult()

	snap := h.e.Snapshot()
	if snap.Timers.Spawn {
		t.Error("spawn timer restarted although the round spawned its quota")
	}
	if !snap.Timers.Tick || !snap.Timers.Quiz {
		t.Errorf("timers = %+v, expected tick and quiz", snap.Timers)
	}
}

func TestRollbackOnPanickingQuestionSource(t *testing.T) {
	h := newHarness(noQuizConfig(), panicSource{})
	h.e.StartGame()
	h.step(160 * time.Millisecond)
	before := h.e.Snapshot()

	h.e.TriggerQuiz()

	snap := h.e.Snapshot()
	if snap.Mode != ModePlaying || snap.QuizPhase != QuizIdle {
		t.Errorf("mode=%s phase=%s, expected rollback to playing", snap.Mode, snap.QuizPhase)
	}
	if snap.Overlay.Darken != 0 {
		t.Error("darken overlay survived the rollback")
	}
	if !snap.Timers.Tick || !snap.Timers.Spawn {
		t.Errorf("timer stops were not discarded: %+v", snap.Timers)
	}
	if snap.Hash() != before.Hash() {
		t.Error("state differs from the checkpoint")
	}

	h.step(160 * time.Millisecond)
	if h.e.Snapshot().Tick != before.Tick+10 {
		t.Error("engine stopped ticking after the failed callback")
	}
}

func TestRollbackOnPanicInsideTick(t *testing.T) {
	w := &failingWriter{}
	h := &harness{clk: clock.New(), audio: &recordingAudio{}}
	h.e = NewEngine(Options{
		Config: noQuizConfig(),
		Clock:  h.clk,
		Audio:  h.audio,
		Logger: log.New(w),
		Seed:   1,
	})
	h.e.StartGame()
	h.step(160 * time.Millisecond)

	// The breach on the next tick logs "life lost" through the armed writer.
	h.e.mu.Lock()
	v := NewVirus(h.e.cfg.Playfield.LaneWidth()/2, 1, h.e.cfg.Virus.Size, VirusRound)
	v.Y = float64(h.e.cfg.Playfield.Height)
	h.e.s.viruses = append(h.e.s.viruses, v)
	h.e.mu.Unlock()

	before := h.e.Snapshot()
	w.armed = true
	h.e.Tick()

	snap := h.e.Snapshot()
	if snap.Hash() != before.Hash() {
		t.Error("tick state differs from the checkpoint")
	}
	if snap.Lives != before.Lives || snap.Overlay.LifeLossFlash != 0 || snap.Overlay.Shake != 0 {
		t.Errorf("lives=%d flash=%v shake=%v survived the rollback",
			snap.Lives, snap.Overlay.LifeLossFlash, snap.Overlay.Shake)
	}
	if n := h.audio.count(SoundLifeLost); n != 0 {
		t.Errorf("%d life_lost sounds played for a rolled back tick", n)
	}

	h.e.Tick()
	snap = h.e.Snapshot()
	if snap.Tick != before.Tick+1 || snap.Lives != before.Lives-1 {
		t.Errorf("tick=%d lives=%d after replay, expected %d/%d",
			snap.Tick, snap.Lives, before.Tick+1, before.Lives-1)
	}
}

func TestLastLifeBreachEndsTickBeforeCombat(t *testing.T) {
	cfg := noQuizConfig()
	cfg.Player.Lives = 1
	h := newHarness(cfg, nil)
	h.e.StartGame()

	lane := cfg.Playfield.LaneWidth()
	h.e.mu.Lock()
	breach := NewVirus(lane/2, 1, cfg.Virus.Size, VirusStar)
	breach.Y = float64(cfg.Playfield.Height)
	wounded := NewVirus(lane/2+lane, 1, cfg.Virus.Size, VirusRound)
	wounded.Y = 300
	wounded.Hits = 1
	h.e.s.viruses = append(h.e.s.viruses, breach, wounded)
	h.e.s.weapons.Projectiles = append(h.e.s.weapons.Projectiles, Projectile{
		X:      float64(wounded.X),
		Y:      wounded.Y,
		Weapon: WeaponBall,
		Size:   h.e.s.weapons.SizeOf(WeaponBall),
		Speed:  cfg.Weapons.ProjectileSpeed,
	})
	h.e.mu.Unlock()

	h.e.Tick()

	snap := h.e.Snapshot()
	if snap.Mode != ModeGameOver || snap.Lives != 0 {
		t.Fatalf("mode=%s lives=%d, expected game over", snap.Mode, snap.Lives)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected no kills after the game ended", snap.Score)
	}
	if len(h.results) != 1 {
		t.Fatalf("%d results recorded, expected 1", len(h.results))
	}
	if h.results[0].Score != snap.Score {
		t.Errorf("recorded score %d, session score %d", h.results[0].Score, snap.Score)
	}
	if n := h.audio.count(SoundVirusDestroyed); n != 0 {
		t.Errorf("%d viruses destroyed after game over", n)
	}
	if len(snap.Viruses) != 1 || snap.Viruses[0].Hits != 1 {
		t.Errorf("viruses = %+v, expected the wounded virus untouched", snap.Viruses)
	}
}

func TestStaleCallbacksIgnored(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()
	stale := h.e.callback(h.e.s.gen, "spawn", h.e.spawnVirus)

	h.e.ReturnToHome()
	h.e.StartGame()

	stale()
	snap := h.e.Snapshot()
	if len(snap.Viruses) != 0 || snap.Spawned != 0 {
		t.Errorf("stale callback mutated the new session: spawned=%d", snap.Spawned)
	}
}

func TestReturnToHomeFromEveryMode(t *testing.T) {
	setups := []struct {
		name  string
		setup func(h *harness)
	}{
		{"playing", func(h *harness) {}},
		{"quiz", func(h *harness) { h.e.TriggerQuiz() }},
		{"quiz result", func(h *harness) {
			h.e.TriggerQuiz()
			h.answer("nope")
		}},
		{"game over", func(h *harness) {
			for range 3 {
				h.e.TriggerQuiz()
				h.answer("nope")
				h.e.FinishQuizResult()
			}
		}},
	}

	for _, tc := range setups {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(noQuizConfig(), nil)
			h.e.StartGame()
			h.clk.Advance(5 * time.Second)
			tc.setup(h)

			h.e.ReturnToHome()
			snap := h.e.Snapshot()
			if snap.Mode != ModeHome {
				t.Fatalf("Mode = %s, expected home", snap.Mode)
			}
			if snap.Timers.Any() {
				t.Errorf("timers armed on home: %+v", snap.Timers)
			}
			if snap.Lives != 3 || snap.Score != 0 || len(snap.Viruses) != 0 {
				t.Errorf("session not cleared: lives=%d score=%d viruses=%d", snap.Lives, snap.Score, len(snap.Viruses))
			}

			h.clk.Advance(time.Minute)
			if h.e.Mode() != ModeHome || h.e.Snapshot().Tick != 0 {
				t.Error("timers fired after returning home")
			}
		})
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()
	for range 3 {
		h.e.TriggerQuiz()
		h.answer("nope")
		h.e.FinishQuizResult()
	}
	if h.e.Mode() != ModeGameOver {
		t.Fatalf("Mode = %s, expected game_over", h.e.Mode())
	}

	h.e.StartGame()
	snap := h.e.Snapshot()
	if snap.Mode != ModePlaying || snap.Lives != 3 || snap.Round != 1 || snap.QuizAsked != 0 {
		t.Errorf("restart: mode=%s lives=%d round=%d asked=%d", snap.Mode, snap.Lives, snap.Round, snap.QuizAsked)
	}
	if !snap.Timers.Tick || !snap.Timers.Spawn || !snap.Timers.Quiz {
		t.Errorf("timers = %+v after restart", snap.Timers)
	}
}

func TestShootCooldownUsesClock(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()

	h.e.Shoot()
	h.e.Shoot()
	if n := len(h.e.Snapshot().Projectiles); n != 1 {
		t.Fatalf("%d projectiles, expected 1 within cooldown", n)
	}

	h.clk.Advance(250 * time.Millisecond)
	h.e.Shoot()
	if n := len(h.e.Snapshot().Projectiles); n != 2 {
		t.Errorf("%d projectiles, expected 2 after cooldown", n)
	}
	if h.audio.count(SoundShoot) != 2 {
		t.Errorf("shoot played %d times", h.audio.count(SoundShoot))
	}
}

func TestWeaponKeyToggle(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()

	if !h.e.Snapshot().ShowKey {
		t.Fatal("weapon key hidden at start")
	}
	h.e.ToggleWeaponKey()
	if h.e.Snapshot().ShowKey {
		t.Error("ToggleWeaponKey did not hide the key")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	h := newHarness(noQuizConfig(), nil)
	h.e.StartGame()
	h.e.SpawnVirus()

	snap := h.e.Snapshot()
	snap.Viruses[0].Hits = 5

	if h.e.Snapshot().Viruses[0].Hits != 0 {
		t.Error("mutating a snapshot changed the engine")
	}
}
