package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestMelodiesCoverEverySound(t *testing.T) {
	sounds := []sim.Sound{sim.SoundEat, sim.SoundHazard, sim.SoundExpire, sim.SoundGameOver}
	for _, s := range sounds {
		if len(Melodies[s]) == 0 {
			t.Errorf("no melody for %v", s)
		}
	}
}

func TestMelodyLength(t *testing.T) {
	for sound, notes := range Melodies {
		expected := 0
		for _, n := range notes {
			expected += testRate.N(n.Duration)
		}
		got := len(drain(Melody(notes, testRate, 1)))
		if got != expected {
			t.Errorf("%v: streamed %d samples, expected %d", sound, got, expected)
		}
	}
}

func TestMelodyVolume(t *testing.T) {
	notes := []Note{{Freq: 440, Duration: 50 * time.Millisecond}}

	tests := []struct {
		name   string
		volume float64
		peak   float64
	}{
		{"full", 1, 1},
		{"half", 0.5, 0.5},
		{"muted", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			peak := 0.0
			for _, s := range drain(Melody(notes, testRate, tc.volume)) {
				peak = math.Max(peak, math.Abs(s[0]))
				if s[0] != s[1] {
					t.Fatalf("channels differ: %v", s)
				}
			}
			if math.Abs(peak-tc.peak) > 1e-9 {
				t.Errorf("peak = %v, expected %v", peak, tc.peak)
			}
		})
	}
}

func TestRestIsSilent(t *testing.T) {
	for _, s := range drain(Melody([]Note{{Freq: 0, Duration: 20 * time.Millisecond}}, testRate, 1)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("rest produced %v", s)
		}
	}
}

func TestFadeEndsNearZero(t *testing.T) {
	samples := drain(Melody([]Note{{Freq: 440, Duration: 50 * time.Millisecond}}, testRate, 1))
	last := samples[len(samples)-1]
	if math.Abs(last[0]) > 0.01 {
		t.Errorf("last sample = %v, expected release to near silence", last[0])
	}
}

func TestPlayerWithoutInitIsNoop(t *testing.T) {
	p := NewPlayer(DefaultConfig(), nil)
	// Must not touch the speaker.
	p.Play(sim.SoundEat)
	p.Play(sim.Sound(99))
	p.Close()

	var s sim.Speaker = Silent{}
	s.Play(sim.SoundGameOver)
}

func TestPlayerInitRejectsBadRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 0
	if err := NewPlayer(cfg, nil).Init(); err == nil {
		t.Error("Init() with zero sample rate should fail")
	}
}
