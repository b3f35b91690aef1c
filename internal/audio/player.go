// Package audio turns engine sound events into short synthesized effects
// played through the system speaker.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the output rate used by the speaker.
const DefaultSampleRate = beep.SampleRate(44100)

const queueSize = 32

// Player mixes sound events onto the speaker. Play never blocks: events
// arriving faster than they can be mixed are dropped.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	queue       chan string
	done        chan struct{}
	wg          sync.WaitGroup
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Nothing is audible until Start succeeds.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		rate:   DefaultSampleRate,
		volume: volume,
		mixer:  &beep.Mixer{},
		queue:  make(chan string, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Start opens the speaker and begins mixing queued events.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true

	p.wg.Add(1)
	go p.loop()
	return nil
}

// Play queues event for playback.
func (p *Player) Play(event string) {
	select {
	case p.queue <- event:
	default:
		p.logger.Debug("audio queue full, dropping event", "event", event)
	}
}

func (p *Player) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case event := <-p.queue:
			s := Sound(event, p.rate, p.volume)
			if s == nil {
				p.logger.Debug("no sound for event", "event", event)
				continue
			}
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// Close stops mixing and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	close(p.done)
	p.wg.Wait()

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Nop discards every event.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
