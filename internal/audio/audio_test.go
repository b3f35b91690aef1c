package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/virus-defense/internal/games/virusdefense"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestEverySoundEventHasEffect(t *testing.T) {
	events := []string{
		virusdefense.SoundEffectiveHit,
		virusdefense.SoundIneffectiveHit,
		virusdefense.SoundVirusDestroyed,
		virusdefense.SoundRoundComplete,
		virusdefense.SoundLifeLost,
		virusdefense.SoundShoot,
		virusdefense.SoundWeaponSwitch,
		virusdefense.SoundMove,
		virusdefense.SoundQuizCorrect,
		virusdefense.SoundQuizWrong,
	}

	for _, ev := range events {
		if Sound(ev, DefaultSampleRate, 1) == nil {
			t.Errorf("no effect for %q", ev)
		}
	}
	if Sound("unknown", DefaultSampleRate, 1) != nil {
		t.Error("unknown event produced a sound")
	}
}

func TestSoundLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)

	for ev, tones := range Effects {
		var total time.Duration
		for _, tone := range tones {
			total += tone.Duration
		}
		expected := 0
		for _, tone := range tones {
			expected += rate.N(tone.Duration)
		}

		n, peak := drain(Sound(ev, rate, 1))
		if n != expected {
			t.Errorf("%s: streamed %d samples, expected %d (%v)", ev, n, expected, total)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%s: peak amplitude %f out of (0, 1]", ev, peak)
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		o := newOscillator(Tone{Freq: 440, Duration: 10 * time.Millisecond, Wave: w, Gain: 1}, rate)
		n, peak := drain(o)
		if n != 80 {
			t.Errorf("wave %d: %d samples, expected 80", w, n)
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("wave %d: peak %f", w, peak)
		}
		if o.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", w, o.Err())
		}
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(Sound(virusdefense.SoundShoot, beep.SampleRate(8000), 0))
	if peak != 0 {
		t.Errorf("muted sound peaked at %f", peak)
	}
}

func TestPlayNeverBlocks(t *testing.T) {
	p := NewPlayer(1, nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < queueSize*4; i++ {
			p.Play(virusdefense.SoundShoot)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Play blocked with the player stopped")
	}

	// Closing a player that never started is a no-op.
	p.Close()
}

func TestNop(t *testing.T) {
	var sink virusdefense.AudioSink = Nop{}
	sink.Play(virusdefense.SoundShoot)
}
