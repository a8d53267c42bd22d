// Package audio plays the game's feedback beeps through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

// Note is a single square-wave beep, like a piezo driven by tone().
type Note struct {
	Freq     float64 // Hz; 0 is a rest
	Duration time.Duration
}

// Melodies maps each feedback sound to its note sequence.
var Melodies = map[sim.Sound][]Note{
	sim.SoundEat: {
		{Freq: 1046.5, Duration: 60 * time.Millisecond},
	},
	sim.SoundHazard: {
		{Freq: 196, Duration: 120 * time.Millisecond},
		{Freq: 147, Duration: 120 * time.Millisecond},
	},
	sim.SoundExpire: {
		{Freq: 659.3, Duration: 50 * time.Millisecond},
		{Freq: 0, Duration: 30 * time.Millisecond},
		{Freq: 523.3, Duration: 50 * time.Millisecond},
	},
	sim.SoundGameOver: {
		{Freq: 392, Duration: 180 * time.Millisecond},
		{Freq: 330, Duration: 180 * time.Millisecond},
		{Freq: 262, Duration: 400 * time.Millisecond},
	},
}

// square generates a fixed-length square wave.
type square struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newSquare(freq float64, d time.Duration, rate beep.SampleRate) *square {
	return &square{freq: freq, length: rate.N(d), rate: rate}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := 0.0
		if s.freq > 0 {
			val = 1.0
			if s.phase >= 0.5 {
				val = -1.0
			}
			s.phase += s.freq / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// fade applies a short linear release to the end of a stream so notes do
// not click.
type fade struct {
	streamer beep.Streamer
	position int
	length   int
	release  int
}

func newFade(s beep.Streamer, total, release int) *fade {
	return &fade{streamer: s, length: total, release: min(release, total)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := f.length - f.position
		if f.release > 0 && remaining < f.release {
			vol := float64(remaining) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// Melody builds a streamer playing notes in sequence at the given linear
// volume in [0, 1].
func Melody(notes []Note, rate beep.SampleRate, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		total := rate.N(n.Duration)
		parts = append(parts, newFade(newSquare(n.Freq, n.Duration, rate), total, rate.N(10*time.Millisecond)))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume wraps s in a logarithmic volume control; zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
