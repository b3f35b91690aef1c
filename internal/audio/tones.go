package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/virus-defense/internal/games/virusdefense"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Tone is one note of a sound effect.
type Tone struct {
	Freq     float64 // Hz; a sweep ends at FreqEnd
	FreqEnd  float64
	Duration time.Duration
	Wave     Wave
	Gain     float64
}

// Effects maps every engine sound event to its tone sequence.
var Effects = map[string][]Tone{
	virusdefense.SoundShoot: {
		{Freq: 880, FreqEnd: 1320, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.15},
	},
	virusdefense.SoundMove: {
		{Freq: 330, Duration: 20 * time.Millisecond, Wave: WaveTriangle, Gain: 0.1},
	},
	virusdefense.SoundWeaponSwitch: {
		{Freq: 523, Duration: 30 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
		{Freq: 659, Duration: 30 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
	},
	virusdefense.SoundEffectiveHit: {
		{Freq: 660, FreqEnd: 990, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
	},
	virusdefense.SoundIneffectiveHit: {
		{Freq: 140, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.15},
	},
	virusdefense.SoundVirusDestroyed: {
		{Duration: 120 * time.Millisecond, Wave: WaveNoise, Gain: 0.25},
		{Freq: 220, FreqEnd: 80, Duration: 100 * time.Millisecond, Wave: WaveSine, Gain: 0.3},
	},
	virusdefense.SoundRoundComplete: {
		{Freq: 523, Duration: 90 * time.Millisecond, Wave: WaveTriangle, Gain: 0.3},
		{Freq: 659, Duration: 90 * time.Millisecond, Wave: WaveTriangle, Gain: 0.3},
		{Freq: 784, Duration: 90 * time.Millisecond, Wave: WaveTriangle, Gain: 0.3},
		{Freq: 1047, Duration: 180 * time.Millisecond, Wave: WaveTriangle, Gain: 0.3},
	},
	virusdefense.SoundLifeLost: {
		{Freq: 440, FreqEnd: 110, Duration: 350 * time.Millisecond, Wave: WaveSquare, Gain: 0.25},
	},
	virusdefense.SoundQuizCorrect: {
		{Freq: 784, Duration: 80 * time.Millisecond, Wave: WaveSine, Gain: 0.3},
		{Freq: 1047, Duration: 140 * time.Millisecond, Wave: WaveSine, Gain: 0.3},
	},
	virusdefense.SoundQuizWrong: {
		{Freq: 196, Duration: 120 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
		{Freq: 147, Duration: 200 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
	},
}

// oscillator renders one tone with a short attack and an exponential tail.
type oscillator struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	seed  uint32
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	return &oscillator{tone: t, rate: rate, total: rate.N(t.Duration), seed: 0x9e3779b9}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.pos >= o.total {
		return 0, false
	}
	attack := float64(o.rate.N(5 * time.Millisecond))

	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		progress := float64(o.pos) / float64(o.total)

		freq := o.tone.Freq
		if o.tone.FreqEnd > 0 {
			freq += (o.tone.FreqEnd - o.tone.Freq) * progress
		}

		var val float64
		switch o.tone.Wave {
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		env := math.Exp(-3 * progress)
		if p := float64(o.pos); p < attack {
			env *= p / attack
		}
		val *= env * o.tone.Gain

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Sound builds the streamer for event at the given volume in [0, 1].
// It returns nil for unknown events.
func Sound(event string, rate beep.SampleRate, volume float64) beep.Streamer {
	tones, ok := Effects[event]
	if !ok {
		return nil
	}
	seq := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		seq[i] = newOscillator(t, rate)
	}
	return withVolume(beep.Seq(seq...), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
