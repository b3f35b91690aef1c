package virusdefense

import (
	"time"

	"github.com/vovakirdan/virus-defense/internal/config"
)

// EffectKind identifies a transient visual effect.
type EffectKind int

const (
	EffectDarken        EffectKind = iota // playfield fades while a quiz is up
	EffectRoundFlash                      // round cleared
	EffectLifeLossFlash                   // red flash on boundary breach
	EffectShake                           // screen shake on boundary breach
	EffectScroll                          // background scroll burst on new round
	effectKindCount
)

func (k EffectKind) String() string {
	switch k {
	case EffectDarken:
		return "darken"
	case EffectRoundFlash:
		return "round_flash"
	case EffectLifeLossFlash:
		return "life_loss_flash"
	case EffectShake:
		return "shake"
	case EffectScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Effect is a countdown measured in master ticks.
type Effect struct {
	Duration  int
	Remaining int
	Peak      float64
}

// Active reports whether the effect still has time left.
func (e Effect) Active() bool {
	return e.Remaining > 0
}

// Intensity decays linearly from Peak to zero.
func (e Effect) Intensity() float64 {
	if e.Remaining <= 0 || e.Duration <= 0 {
		return 0
	}
	return e.Peak * float64(e.Remaining) / float64(e.Duration)
}

// Overlay holds every effect independently. Effects never interact and
// only move forward when Update is called from the master tick.
type Overlay struct {
	effects   [effectKindCount]Effect
	amplitude int
}

// NewOverlay converts the configured durations to ticks of length tick.
func NewOverlay(cfg config.OverlayConfig, tick time.Duration) Overlay {
	ticks := func(ms int) int {
		n := int(time.Duration(ms) * time.Millisecond / tick)
		return max(1, n)
	}

	var o Overlay
	o.amplitude = cfg.ShakeAmplitude
	o.effects[EffectDarken] = Effect{Duration: ticks(cfg.DarkenMS), Peak: cfg.DarkenPeak}
	o.effects[EffectRoundFlash] = Effect{Duration: ticks(cfg.RoundFlashMS), Peak: 1}
	o.effects[EffectLifeLossFlash] = Effect{Duration: ticks(cfg.LifeLossFlashMS), Peak: 1}
	o.effects[EffectShake] = Effect{Duration: ticks(cfg.ShakeMS), Peak: 1}
	o.effects[EffectScroll] = Effect{Duration: ticks(cfg.ScrollMS), Peak: 1}
	return o
}

// Trigger (re)starts an effect at full intensity.
func (o *Overlay) Trigger(k EffectKind) {
	o.effects[k].Remaining = o.effects[k].Duration
}

// Update advances every active effect by one tick.
func (o *Overlay) Update() {
	for i := range o.effects {
		if o.effects[i].Remaining > 0 {
			o.effects[i].Remaining--
		}
	}
}

// Reset deactivates every effect.
func (o *Overlay) Reset() {
	for i := range o.effects {
		o.effects[i].Remaining = 0
	}
}

// Effect returns the state of one effect.
func (o Overlay) Effect(k EffectKind) Effect {
	return o.effects[k]
}

// Active reports whether effect k is running.
func (o Overlay) Active(k EffectKind) bool {
	return o.effects[k].Active()
}

// Intensity returns the current intensity of effect k.
func (o Overlay) Intensity(k EffectKind) float64 {
	return o.effects[k].Intensity()
}

// ShakeOffset returns the horizontal cell offset of the shake effect.
// The sign alternates every tick.
func (o Overlay) ShakeOffset(tick uint64) int {
	n := int(o.Intensity(EffectShake)*float64(o.amplitude) + 0.5)
	if tick%2 == 1 {
		return -n
	}
	return n
}
