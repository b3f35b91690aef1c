// Package config provides YAML-based configuration for Virus Defense:
// playfield geometry, weapon and virus parameters, round pacing, quiz
// timing and overlay effect durations.
package config

import "time"

// VirusDefenseConfig contains all tunable game parameters.
type VirusDefenseConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Virus     VirusConfig     `yaml:"virus"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Rounds    RoundsConfig    `yaml:"rounds"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Overlay   OverlayConfig   `yaml:"overlay"`
	Session   SessionConfig   `yaml:"session"`
}

// PlayfieldConfig defines the logical playfield.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Lanes  int `yaml:"lanes"`
}

// LaneWidth returns the width of a single lane.
func (p PlayfieldConfig) LaneWidth() int {
	return p.Width / p.Lanes
}

// PlayerConfig defines the player entity and session lives.
type PlayerConfig struct {
	Size         int `yaml:"size"`
	BottomOffset int `yaml:"bottom_offset"`
	Lives        int `yaml:"lives"`
}

// VirusConfig defines virus parameters.
type VirusConfig struct {
	Size  int `yaml:"size"`
	Score int `yaml:"score"`
}

// WeaponSizes holds the projectile size of each weapon.
type WeaponSizes struct {
	Ball      int `yaml:"ball"`
	Star      int `yaml:"star"`
	SpikyBall int `yaml:"spiky_ball"`
	Arrow     int `yaml:"arrow"`
}

// WeaponsConfig defines projectile parameters.
type WeaponsConfig struct {
	ProjectileSpeed float64     `yaml:"projectile_speed"`
	LaunchOffset    int         `yaml:"launch_offset"`
	CooldownMS      int         `yaml:"cooldown_ms"`
	Sizes           WeaponSizes `yaml:"sizes"`
}

// Cooldown returns the minimum delay between two shots.
func (w WeaponsConfig) Cooldown() time.Duration {
	return time.Duration(w.CooldownMS) * time.Millisecond
}

// RoundsConfig defines speed progression and spawn cadence.
type RoundsConfig struct {
	BaseSpeed            float64 `yaml:"base_speed"`
	SpeedIncrement       float64 `yaml:"speed_increment"`
	FirstRoundIntervalMS int     `yaml:"first_round_interval_ms"`
	EarlyIntervalMS      int     `yaml:"early_interval_ms"`
	MidIntervalMS        int     `yaml:"mid_interval_ms"`
	IntervalStepMS       int     `yaml:"interval_step_ms"`
	MinIntervalMS        int     `yaml:"min_interval_ms"`
}

// QuizConfig defines quiz scheduling.
type QuizConfig struct {
	MinDelayMS int `yaml:"min_delay_ms"`
	MaxDelayMS int `yaml:"max_delay_ms"`
	ResultMS   int `yaml:"result_ms"`
}

// ResultDuration returns how long a quiz result stays on screen.
func (q QuizConfig) ResultDuration() time.Duration {
	return time.Duration(q.ResultMS) * time.Millisecond
}

// OverlayConfig defines visual feedback durations.
type OverlayConfig struct {
	DarkenMS        int     `yaml:"darken_ms"`
	DarkenPeak      float64 `yaml:"darken_peak"`
	RoundFlashMS    int     `yaml:"round_flash_ms"`
	LifeLossFlashMS int     `yaml:"life_loss_flash_ms"`
	ShakeMS         int     `yaml:"shake_ms"`
	ShakeAmplitude  int     `yaml:"shake_amplitude"`
	ScrollMS        int     `yaml:"scroll_ms"`
}

// SessionConfig defines the master tick cadence.
type SessionConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the master tick period.
func (s SessionConfig) TickInterval() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}
