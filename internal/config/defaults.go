package config

import (
	_ "embed"
)

//go:embed defaults/virusdefense.yaml
var defaultVirusDefenseYAML []byte

// DefaultVirusDefenseConfig returns the hardcoded default configuration.
func DefaultVirusDefenseConfig() VirusDefenseConfig {
	return VirusDefenseConfig{
		Playfield: PlayfieldConfig{
			Width:  600,
			Height: 800,
			Lanes:  3,
		},
		Player: PlayerConfig{
			Size:         40,
			BottomOffset: 100,
			Lives:        3,
		},
		Virus: VirusConfig{
			Size:  30,
			Score: 10,
		},
		Weapons: WeaponsConfig{
			ProjectileSpeed: 8,
			LaunchOffset:    30,
			CooldownMS:      250,
			Sizes: WeaponSizes{
				Ball:      12,
				Star:      16,
				SpikyBall: 14,
				Arrow:     18,
			},
		},
		Rounds: RoundsConfig{
			BaseSpeed:            1.0,
			SpeedIncrement:       0.3,
			FirstRoundIntervalMS: 4000,
			EarlyIntervalMS:      3000,
			MidIntervalMS:        2000,
			IntervalStepMS:       200,
			MinIntervalMS:        800,
		},
		Quiz: QuizConfig{
			MinDelayMS: 35000,
			MaxDelayMS: 60000,
			ResultMS:   2000,
		},
		Overlay: OverlayConfig{
			DarkenMS:        600,
			DarkenPeak:      0.6,
			RoundFlashMS:    500,
			LifeLossFlashMS: 400,
			ShakeMS:         300,
			ShakeAmplitude:  2,
			ScrollMS:        1200,
		},
		Session: SessionConfig{
			TickMS: 16,
		},
	}
}

// Validate repairs missing or out-of-range values by falling back to the
// defaults. It returns the YAML paths of the repaired fields.
func (c *VirusDefenseConfig) Validate() []string {
	d := DefaultVirusDefenseConfig()
	var fixed []string

	fixInt := func(name string, v *int, def int) {
		if *v <= 0 {
			*v = def
			fixed = append(fixed, name)
		}
	}
	fixFloat := func(name string, v *float64, def float64) {
		if *v <= 0 {
			*v = def
			fixed = append(fixed, name)
		}
	}

	fixInt("playfield.width", &c.Playfield.Width, d.Playfield.Width)
	fixInt("playfield.height", &c.Playfield.Height, d.Playfield.Height)
	fixInt("playfield.lanes", &c.Playfield.Lanes, d.Playfield.Lanes)
	if c.Playfield.Lanes > c.Playfield.Width {
		c.Playfield.Lanes = d.Playfield.Lanes
		fixed = append(fixed, "playfield.lanes")
	}

	fixInt("player.size", &c.Player.Size, d.Player.Size)
	fixInt("player.bottom_offset", &c.Player.BottomOffset, d.Player.BottomOffset)
	fixInt("player.lives", &c.Player.Lives, d.Player.Lives)

	fixInt("virus.size", &c.Virus.Size, d.Virus.Size)
	if c.Virus.Score < 0 {
		c.Virus.Score = d.Virus.Score
		fixed = append(fixed, "virus.score")
	}

	fixFloat("weapons.projectile_speed", &c.Weapons.ProjectileSpeed, d.Weapons.ProjectileSpeed)
	if c.Weapons.LaunchOffset < 0 {
		c.Weapons.LaunchOffset = d.Weapons.LaunchOffset
		fixed = append(fixed, "weapons.launch_offset")
	}
	if c.Weapons.CooldownMS < 0 {
		c.Weapons.CooldownMS = d.Weapons.CooldownMS
		fixed = append(fixed, "weapons.cooldown_ms")
	}
	fixInt("weapons.sizes.ball", &c.Weapons.Sizes.Ball, d.Weapons.Sizes.Ball)
	fixInt("weapons.sizes.star", &c.Weapons.Sizes.Star, d.Weapons.Sizes.Star)
	fixInt("weapons.sizes.spiky_ball", &c.Weapons.Sizes.SpikyBall, d.Weapons.Sizes.SpikyBall)
	fixInt("weapons.sizes.arrow", &c.Weapons.Sizes.Arrow, d.Weapons.Sizes.Arrow)

	fixFloat("rounds.base_speed", &c.Rounds.BaseSpeed, d.Rounds.BaseSpeed)
	fixFloat("rounds.speed_increment", &c.Rounds.SpeedIncrement, d.Rounds.SpeedIncrement)
	fixInt("rounds.first_round_interval_ms", &c.Rounds.FirstRoundIntervalMS, d.Rounds.FirstRoundIntervalMS)
	fixInt("rounds.early_interval_ms", &c.Rounds.EarlyIntervalMS, d.Rounds.EarlyIntervalMS)
	fixInt("rounds.mid_interval_ms", &c.Rounds.MidIntervalMS, d.Rounds.MidIntervalMS)
	fixInt("rounds.interval_step_ms", &c.Rounds.IntervalStepMS, d.Rounds.IntervalStepMS)
	fixInt("rounds.min_interval_ms", &c.Rounds.MinIntervalMS, d.Rounds.MinIntervalMS)

	fixInt("quiz.min_delay_ms", &c.Quiz.MinDelayMS, d.Quiz.MinDelayMS)
	fixInt("quiz.max_delay_ms", &c.Quiz.MaxDelayMS, d.Quiz.MaxDelayMS)
	if c.Quiz.MaxDelayMS <= c.Quiz.MinDelayMS {
		c.Quiz.MaxDelayMS = c.Quiz.MinDelayMS + 1
		fixed = append(fixed, "quiz.max_delay_ms")
	}
	fixInt("quiz.result_ms", &c.Quiz.ResultMS, d.Quiz.ResultMS)

	fixInt("overlay.darken_ms", &c.Overlay.DarkenMS, d.Overlay.DarkenMS)
	fixFloat("overlay.darken_peak", &c.Overlay.DarkenPeak, d.Overlay.DarkenPeak)
	fixInt("overlay.round_flash_ms", &c.Overlay.RoundFlashMS, d.Overlay.RoundFlashMS)
	fixInt("overlay.life_loss_flash_ms", &c.Overlay.LifeLossFlashMS, d.Overlay.LifeLossFlashMS)
	fixInt("overlay.shake_ms", &c.Overlay.ShakeMS, d.Overlay.ShakeMS)
	if c.Overlay.ShakeAmplitude < 0 {
		c.Overlay.ShakeAmplitude = d.Overlay.ShakeAmplitude
		fixed = append(fixed, "overlay.shake_amplitude")
	}
	fixInt("overlay.scroll_ms", &c.Overlay.ScrollMS, d.Overlay.ScrollMS)

	fixInt("session.tick_ms", &c.Session.TickMS, d.Session.TickMS)

	return fixed
}
