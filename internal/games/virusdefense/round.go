package virusdefense

import (
	"time"

	"github.com/vovakirdan/virus-defense/internal/config"
)

// RoundPhase is the progression state of the current round.
type RoundPhase int

const (
	// PhaseSpawning means more viruses are due this round.
	PhaseSpawning RoundPhase = iota
	// PhaseAwaitingClear means every virus has spawned but some are alive.
	PhaseAwaitingClear
	// PhaseAdvance means the round is cleared and the next one may begin.
	PhaseAdvance
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseAwaitingClear:
		return "awaiting_clear"
	default:
		return "advance"
	}
}

// RoundState tracks the current round and how many of its viruses spawned.
type RoundState struct {
	Round    int
	Spawned  int
	Required int
	cfg      config.RoundsConfig
}

// NewRoundState starts at round 1.
func NewRoundState(cfg config.RoundsConfig) RoundState {
	return RoundState{
		Round:    1,
		Required: RequiredFor(1),
		cfg:      cfg,
	}
}

// RequiredFor returns how many viruses round must spawn:
// 1+2r for rounds 1-3, then 7+3(r-3).
func RequiredFor(round int) int {
	if round < 1 {
		round = 1
	}
	if round <= 3 {
		return 1 + 2*round
	}
	return 7 + 3*(round-3)
}

// SpeedFor returns the virus speed for round: base + (round-1)*increment.
func (r RoundState) SpeedFor(round int) float64 {
	return r.cfg.BaseSpeed + float64(round-1)*r.cfg.SpeedIncrement
}

// Speed returns the virus speed of the current round.
func (r RoundState) Speed() float64 {
	return r.SpeedFor(r.Round)
}

// SpawnIntervalFor returns the delay between spawns in round. It shrinks
// stepwise and never drops below the configured floor.
func (r RoundState) SpawnIntervalFor(round int) time.Duration {
	var ms int
	switch {
	case round <= 1:
		ms = r.cfg.FirstRoundIntervalMS
	case round <= 3:
		ms = r.cfg.EarlyIntervalMS
	case round <= 5:
		ms = r.cfg.MidIntervalMS
	default:
		ms = max(r.cfg.MinIntervalMS, r.cfg.MidIntervalMS-(round-5)*r.cfg.IntervalStepMS)
	}
	return time.Duration(ms) * time.Millisecond
}

// SpawnInterval returns the spawn delay of the current round.
func (r RoundState) SpawnInterval() time.Duration {
	return r.SpawnIntervalFor(r.Round)
}

// VirusSpawned records one spawn. Callers check IsSpawningComplete first.
func (r *RoundState) VirusSpawned() {
	r.Spawned++
}

// IsSpawningComplete reports whether the round spawned all its viruses.
func (r RoundState) IsSpawningComplete() bool {
	return r.Spawned >= r.Required
}

// Remaining returns how many viruses are still due this round.
func (r RoundState) Remaining() int {
	return max(0, r.Required-r.Spawned)
}

// Phase derives the progression state given the number of live viruses.
func (r RoundState) Phase(liveViruses int) RoundPhase {
	switch {
	case !r.IsSpawningComplete():
		return PhaseSpawning
	case liveViruses > 0:
		return PhaseAwaitingClear
	default:
		return PhaseAdvance
	}
}

// AdvanceToNextRound moves to the next round when spawning is complete and
// no virus is alive. Otherwise it changes nothing and returns false.
func (r *RoundState) AdvanceToNextRound(liveViruses int) bool {
	if r.Phase(liveViruses) != PhaseAdvance {
		return false
	}
	r.Round++
	r.Spawned = 0
	r.Required = RequiredFor(r.Round)
	return true
}
