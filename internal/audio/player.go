package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

// Config selects the output format and level.
type Config struct {
	SampleRate int     // Hz
	Volume     float64 // Linear, 0 to 1
	Buffer     time.Duration
}

// DefaultConfig returns 44.1kHz output at half volume with a 100ms buffer.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Volume:     0.5,
		Buffer:     100 * time.Millisecond,
	}
}

// Player is a sim.Speaker backed by the system audio device. Sounds are
// mixed so overlapping beeps do not block the game loop.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates an uninitialized player. Play is a no-op until Init
// succeeds.
func NewPlayer(cfg Config, logger *log.Logger) *Player {
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// The speaker device can only be opened once per process; later players
// share it at the rate it was first opened with.
var (
	deviceMu   sync.Mutex
	deviceRate beep.SampleRate
)

// Init opens the speaker, if no earlier player did, and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if p.cfg.SampleRate <= 0 {
		return fmt.Errorf("audio: invalid sample rate %d", p.cfg.SampleRate)
	}

	deviceMu.Lock()
	defer deviceMu.Unlock()
	if deviceRate == 0 {
		if err := speaker.Init(p.rate, p.rate.N(p.cfg.Buffer)); err != nil {
			return fmt.Errorf("audio: speaker init: %w", err)
		}
		deviceRate = p.rate
	}
	p.rate = deviceRate

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the melody for s.
func (p *Player) Play(s sim.Sound) {
	notes, ok := Melodies[s]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	streamer := Melody(notes, p.rate, p.cfg.Volume)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	if p.logger != nil {
		p.logger.Debug("sound", "name", s)
	}
}

// Close silences everything still playing. The device stays open for the
// next player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	p.initialized = false
}

// Silent is a sim.Speaker that drops every sound.
type Silent struct{}

// Play does nothing.
func (Silent) Play(sim.Sound) {}
