package virusdefense

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/virus-defense/internal/clock"
	"github.com/vovakirdan/virus-defense/internal/config"
	"github.com/vovakirdan/virus-defense/internal/quiz"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModeHome Mode = iota
	ModePlaying
	ModeQuiz
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModePlaying:
		return "playing"
	case ModeQuiz:
		return "quiz"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Audio event names.
const (
	SoundEffectiveHit   = "effective_hit"
	SoundIneffectiveHit = "ineffective_hit"
	SoundVirusDestroyed = "virus_destroyed"
	SoundRoundComplete  = "round_complete"
	SoundLifeLost       = "life_lost"
	SoundShoot          = "shoot"
	SoundWeaponSwitch   = "weapon_switch"
	SoundMove           = "move"
	SoundQuizCorrect    = "quiz_correct"
	SoundQuizWrong      = "quiz_wrong"
)

// AudioSink receives fire-and-forget sound events. Play must not block.
type AudioSink interface {
	Play(event string)
}

type nopAudio struct{}

func (nopAudio) Play(string) {}

// Result summarizes a finished session.
type Result struct {
	Score       int
	Round       int
	Ticks       uint64
	QuizAsked   int
	QuizCorrect int
}

// Options configures an Engine. Zero values get working defaults.
// OnGameOver runs under the engine lock and must not call back into the engine.
type Options struct {
	Config     config.VirusDefenseConfig
	Questions  quiz.Source
	Clock      clock.Source
	Audio      AudioSink
	Logger     *log.Logger
	Seed       int64
	OnGameOver func(Result)
}

// session is every piece of state a callback may mutate. Copying it with
// clone gives a checkpoint that a failed callback is rolled back to.
type session struct {
	gen     uint64
	mode    Mode
	lives   int
	score   int
	tick    uint64
	player  Player
	viruses []Virus
	weapons Weapons
	round   RoundState
	overlay Overlay
	quiz    QuizController
	showKey bool
	rng     SimpleRNG
}

func (s session) clone() session {
	s.viruses = append([]Virus(nil), s.viruses...)
	s.weapons = s.weapons.clone()
	return s
}

// Engine is the game orchestrator. It owns the session and the timers that
// drive it: the master tick, the spawn cadence, the quiz scheduler and the
// quiz result display.
//
// Every public method takes the engine mutex, so timer callbacks delivered
// on other goroutines never interleave. Each call runs against a checkpoint:
// a panic is logged and the session is restored, and the sounds and timer
// changes the call requested are dropped.
type Engine struct {
	mu sync.Mutex

	cfg        config.VirusDefenseConfig
	questions  quiz.Source
	clk        clock.Source
	audio      AudioSink
	logger     *log.Logger
	onGameOver func(Result)

	s       session
	pending []func()

	tickTimer   clock.Timer
	spawnTimer  clock.Timer
	quizTimer   clock.Timer
	resultTimer clock.Timer
}

// NewEngine creates an engine on the home screen.
func NewEngine(opts Options) *Engine {
	cfg := opts.Config
	if cfg.Session.TickMS == 0 {
		cfg = config.DefaultVirusDefenseConfig()
	}
	cfg.Validate()

	e := &Engine{
		cfg:        cfg,
		questions:  opts.Questions,
		clk:        opts.Clock,
		audio:      opts.Audio,
		logger:     opts.Logger,
		onGameOver: opts.OnGameOver,
	}
	if e.questions == nil {
		e.questions = quiz.Fallback()
	}
	if e.clk == nil {
		e.clk = clock.Wall{}
	}
	if e.audio == nil {
		e.audio = nopAudio{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.s = e.newSession(ModeHome, 0, NewSimpleRNG(opts.Seed))
	return e
}

// Config returns the validated configuration in use.
func (e *Engine) Config() config.VirusDefenseConfig {
	return e.cfg
}

func (e *Engine) newSession(mode Mode, gen uint64, rng SimpleRNG) session {
	pf := e.cfg.Playfield
	return session{
		gen:   gen,
		mode:  mode,
		lives: e.cfg.Player.Lives,
		player: Player{
			X:    pf.Width / 2,
			Y:    pf.Height - e.cfg.Player.BottomOffset,
			Size: e.cfg.Player.Size,
		},
		weapons: NewWeapons(e.cfg.Weapons),
		round:   NewRoundState(e.cfg.Rounds),
		overlay: NewOverlay(e.cfg.Overlay, e.cfg.Session.TickInterval()),
		showKey: true,
		rng:     rng,
	}
}

// run executes fn under the engine lock as one atomic step.
func (e *Engine) run(name string, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.guard(name, fn)
}

// guard runs fn against a checkpoint of the session. Deferred effects
// queued by fn are applied only if fn returns normally.
func (e *Engine) guard(name string, fn func()) {
	checkpoint := e.s.clone()
	e.pending = nil

	defer func() {
		if r := recover(); r != nil {
			e.s = checkpoint
			e.pending = nil
			e.logger.Error("recovered from panic, state rolled back", "op", name, "panic", r)
			return
		}
		pending := e.pending
		e.pending = nil
		for _, f := range pending {
			e.apply(name, f)
		}
	}()

	fn()
}

// apply runs one deferred effect. A failing effect is logged and skipped.
func (e *Engine) apply(name string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("deferred effect failed", "op", name, "panic", r)
		}
	}()
	f()
}

// callback wraps fn for a timer. It is ignored once the session that
// scheduled it has ended.
func (e *Engine) callback(gen uint64, name string, fn func()) func() {
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.s.gen {
			return
		}
		e.guard(name, fn)
	}
}

func (e *Engine) later(f func()) {
	e.pending = append(e.pending, f)
}

func (e *Engine) play(event string) {
	e.later(func() { e.audio.Play(event) })
}

// Timer control. All of it is deferred until the current step succeeds.

func (e *Engine) startTick() {
	gen := e.s.gen
	e.later(func() {
		if e.tickTimer != nil {
			e.tickTimer.Reset(e.cfg.Session.TickInterval())
			return
		}
		e.tickTimer = e.clk.Every(e.cfg.Session.TickInterval(), e.callback(gen, "tick", e.tick))
	})
}

func (e *Engine) startSpawning() {
	gen := e.s.gen
	interval := e.s.round.SpawnInterval()
	e.later(func() {
		if e.spawnTimer != nil {
			e.spawnTimer.Reset(interval)
			return
		}
		e.spawnTimer = e.clk.Every(interval, e.callback(gen, "spawn", e.spawnVirus))
	})
}

func (e *Engine) scheduleQuiz() {
	gen := e.s.gen
	q := e.cfg.Quiz
	delay := time.Duration(q.MinDelayMS+e.s.rng.Intn(q.MaxDelayMS-q.MinDelayMS)) * time.Millisecond
	e.logger.Debug("quiz scheduled", "in", delay)
	e.later(func() {
		if e.quizTimer != nil {
			e.quizTimer.Reset(delay)
			return
		}
		e.quizTimer = e.clk.AfterFunc(delay, e.callback(gen, "quiz", e.triggerQuiz))
	})
}

func (e *Engine) startResultTimer() {
	gen := e.s.gen
	d := e.cfg.Quiz.ResultDuration()
	e.later(func() {
		if e.resultTimer != nil {
			e.resultTimer.Reset(d)
			return
		}
		e.resultTimer = e.clk.AfterFunc(d, e.callback(gen, "quiz_result", e.finishQuizResult))
	})
}

func stopTimer(t clock.Timer) {
	if t != nil {
		t.Stop()
	}
}

func (e *Engine) stopTick()   { e.later(func() { stopTimer(e.tickTimer) }) }
func (e *Engine) stopSpawn()  { e.later(func() { stopTimer(e.spawnTimer) }) }
func (e *Engine) stopQuiz()   { e.later(func() { stopTimer(e.quizTimer) }) }
func (e *Engine) stopResult() { e.later(func() { stopTimer(e.resultTimer) }) }

// discardTimers stops every timer and forgets it, so the next session
// creates fresh timers bound to its own generation.
func (e *Engine) discardTimers() {
	e.later(func() {
		for _, t := range []*clock.Timer{&e.tickTimer, &e.spawnTimer, &e.quizTimer, &e.resultTimer} {
			stopTimer(*t)
			*t = nil
		}
	})
}

// StartGame begins a new session from the home screen or after game over.
func (e *Engine) StartGame() {
	e.run("start", e.startGame)
}

func (e *Engine) startGame() {
	if e.s.mode != ModeHome && e.s.mode != ModeGameOver {
		return
	}
	e.discardTimers()
	e.s = e.newSession(ModePlaying, e.s.gen+1, e.s.rng)

	e.startTick()
	e.startSpawning()
	e.scheduleQuiz()
	e.logger.Info("game started", "round", e.s.round.Round, "lives", e.s.lives)
}

// ReturnToHome abandons the session from any mode.
func (e *Engine) ReturnToHome() {
	e.run("home", e.returnToHome)
}

func (e *Engine) returnToHome() {
	if e.s.mode != ModeHome {
		e.logger.Info("returning to home screen", "from", e.s.mode, "score", e.s.score)
	}
	e.discardTimers()
	e.s = e.newSession(ModeHome, e.s.gen+1, e.s.rng)
}

// Tick runs one master tick. Only the tick timer calls it during play.
func (e *Engine) Tick() {
	e.run("tick", e.tick)
}

func (e *Engine) tick() {
	if e.s.mode != ModePlaying {
		return
	}
	s := &e.s
	s.tick++

	// (1) motion
	s.weapons.Advance()
	for i := range s.viruses {
		s.viruses[i].Advance()
	}

	// (2) boundary breaches
	height := float64(e.cfg.Playfield.Height)
	inside := make([]Virus, 0, len(s.viruses))
	breaches := 0
	for _, v := range s.viruses {
		if v.Y > height {
			breaches++
			continue
		}
		inside = append(inside, v)
	}
	s.viruses = inside
	for range breaches {
		e.loseLife(true)
	}
	if s.mode != ModePlaying {
		return
	}

	// (3) and (4) collisions and removal
	var events []HitEvent
	s.weapons.Projectiles, s.viruses, events = ResolveCollisions(s.weapons.Projectiles, s.viruses)
	for _, ev := range events {
		if ev.Result == HitEffective {
			e.play(SoundEffectiveHit)
		} else {
			e.play(SoundIneffectiveHit)
		}
		if ev.Killed {
			s.score += e.cfg.Virus.Score
			e.play(SoundVirusDestroyed)
		}
	}

	// (5) round completion
	if s.mode == ModePlaying && s.round.AdvanceToNextRound(len(s.viruses)) {
		s.overlay.Trigger(EffectRoundFlash)
		s.overlay.Trigger(EffectScroll)
		e.play(SoundRoundComplete)
		e.startSpawning()
		e.logger.Info("round complete", "round", s.round.Round, "required", s.round.Required,
			"speed", s.round.Speed(), "interval", s.round.SpawnInterval())
	}

	// (6) overlay
	s.overlay.Update()
}

// SpawnVirus adds one virus in a random lane. The spawn timer calls it.
func (e *Engine) SpawnVirus() {
	e.run("spawn", e.spawnVirus)
}

func (e *Engine) spawnVirus() {
	if e.s.mode != ModePlaying {
		return
	}
	s := &e.s
	if s.round.IsSpawningComplete() {
		e.stopSpawn()
		return
	}

	lanes := e.cfg.Playfield.Lanes
	laneWidth := e.cfg.Playfield.LaneWidth()
	lane := s.rng.Intn(lanes)
	kind := VirusType(s.rng.Intn(int(virusTypeCount)))

	v := NewVirus(lane*laneWidth+laneWidth/2, s.round.Speed(), e.cfg.Virus.Size, kind)
	s.viruses = append(s.viruses, v)
	s.round.VirusSpawned()

	e.logger.Debug("virus spawned", "type", kind, "weakness", kind.Weakness(), "lane", lane,
		"spawned", s.round.Spawned, "required", s.round.Required)

	if s.round.IsSpawningComplete() {
		e.stopSpawn()
		return
	}
	e.startSpawning()
}

// TriggerQuiz interrupts play with a question. The quiz timer calls it.
func (e *Engine) TriggerQuiz() {
	e.run("quiz", e.triggerQuiz)
}

func (e *Engine) triggerQuiz() {
	if e.s.mode != ModePlaying || e.s.quiz.Phase != QuizIdle {
		return
	}
	s := &e.s
	s.mode = ModeQuiz
	s.overlay.Trigger(EffectDarken)
	q := e.questions.Random(&s.rng)
	s.quiz.Begin(q)
	e.stopTick()
	e.stopSpawn()
	e.stopQuiz()
	e.logger.Info("quiz shown", "id", q.ID)
}

// FinishQuizResult ends the result display and resumes play. The result
// timer calls it.
func (e *Engine) FinishQuizResult() {
	e.run("quiz_result", e.finishQuizResult)
}

func (e *Engine) finishQuizResult() {
	s := &e.s
	if !s.quiz.Finish() {
		return
	}
	if s.mode != ModeQuiz {
		return
	}
	s.mode = ModePlaying
	e.startTick()
	if !s.round.IsSpawningComplete() {
		e.startSpawning()
	}
	e.scheduleQuiz()
	e.logger.Debug("quiz closed, play resumed")
}

// loseLife is the only way lives decrease. feedback selects the breach
// flash and shake. Reaching zero ends the game exactly once.
func (e *Engine) loseLife(feedback bool) {
	s := &e.s
	if s.mode != ModePlaying && s.mode != ModeQuiz {
		return
	}
	if s.lives <= 0 {
		return
	}
	s.lives--
	if feedback {
		s.overlay.Trigger(EffectLifeLossFlash)
		s.overlay.Trigger(EffectShake)
	}
	e.logger.Info("life lost", "lives", s.lives, "breach", feedback)

	if s.lives > 0 {
		e.play(SoundLifeLost)
		return
	}

	s.mode = ModeGameOver
	s.quiz.ForceIdle()
	e.stopTick()
	e.stopSpawn()
	e.stopQuiz()
	e.stopResult()

	res := Result{
		Score:       s.score,
		Round:       s.round.Round,
		Ticks:       s.tick,
		QuizAsked:   s.quiz.Asked,
		QuizCorrect: s.quiz.Right,
	}
	e.logger.Info("game over", "score", res.Score, "round", res.Round, "quiz_asked", res.QuizAsked)
	if e.onGameOver != nil {
		e.later(func() { e.onGameOver(res) })
	}
}

// Player input. Movement, shooting and weapon changes only apply while
// playing; answer editing only while a question awaits an answer.

// MoveLeft moves the player one lane left.
func (e *Engine) MoveLeft() {
	e.run("move_left", func() {
		if e.s.mode != ModePlaying {
			return
		}
		e.s.player.MoveLeft(e.cfg.Playfield.LaneWidth(), e.cfg.Playfield.Width)
		e.play(SoundMove)
	})
}

// MoveRight moves the player one lane right.
func (e *Engine) MoveRight() {
	e.run("move_right", func() {
		if e.s.mode != ModePlaying {
			return
		}
		e.s.player.MoveRight(e.cfg.Playfield.LaneWidth(), e.cfg.Playfield.Width)
		e.play(SoundMove)
	})
}

// Shoot fires the current weapon if the cooldown allows it.
func (e *Engine) Shoot() {
	e.run("shoot", func() {
		if e.s.mode != ModePlaying {
			return
		}
		if e.s.weapons.Shoot(e.s.player.X, e.s.player.Y, e.clk.Now()) {
			e.play(SoundShoot)
		}
	})
}

// SwitchWeapon cycles to the next weapon.
func (e *Engine) SwitchWeapon() {
	e.run("switch_weapon", func() {
		if e.s.mode != ModePlaying {
			return
		}
		e.s.weapons.Switch()
		e.play(SoundWeaponSwitch)
	})
}

// SelectWeapon picks a weapon directly.
func (e *Engine) SelectWeapon(t WeaponType) {
	e.run("select_weapon", func() {
		if e.s.mode != ModePlaying {
			return
		}
		if e.s.weapons.Select(t) {
			e.play(SoundWeaponSwitch)
		}
	})
}

// ToggleWeaponKey shows or hides the weapon legend.
func (e *Engine) ToggleWeaponKey() {
	e.run("toggle_key", func() {
		if e.s.mode != ModePlaying {
			return
		}
		e.s.showKey = !e.s.showKey
	})
}

// AppendChar types one rune into the quiz answer.
func (e *Engine) AppendChar(r rune) {
	e.run("append_char", func() {
		if e.s.mode != ModeQuiz {
			return
		}
		e.s.quiz.AppendChar(r)
	})
}

// Backspace deletes the last typed rune of the quiz answer.
func (e *Engine) Backspace() {
	e.run("backspace", func() {
		if e.s.mode != ModeQuiz {
			return
		}
		e.s.quiz.Backspace()
	})
}

// SubmitAnswer checks the typed answer. A wrong answer costs a life
// without the breach feedback.
func (e *Engine) SubmitAnswer() {
	e.run("submit_answer", e.submitAnswer)
}

func (e *Engine) submitAnswer() {
	s := &e.s
	if s.mode != ModeQuiz {
		return
	}
	correct, ok := s.quiz.Submit()
	if !ok {
		return
	}
	e.logger.Info("quiz answered", "id", s.quiz.Question.ID, "correct", correct)
	if correct {
		e.play(SoundQuizCorrect)
	} else {
		e.play(SoundQuizWrong)
		e.loseLife(false)
	}
	if s.mode == ModeQuiz {
		e.startResultTimer()
	}
}

// Mode returns the current top-level mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.mode
}
