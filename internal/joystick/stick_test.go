package joystick

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

func TestDecodeDefaultStick(t *testing.T) {
	s := DefaultStick()

	tests := []struct {
		name     string
		r        Reading
		expected sim.Direction
		ok       bool
	}{
		{"centered", Reading{512, 512}, 0, false},
		{"inside deadzone", Reading{700, 400}, 0, false},
		{"deadzone edge", Reading{712, 512}, 0, false},
		{"high x is left", Reading{1023, 512}, sim.DirLeft, true},
		{"low x is right", Reading{0, 512}, sim.DirRight, true},
		{"high y is up", Reading{512, 1023}, sim.DirUp, true},
		{"low y is down", Reading{512, 0}, sim.DirDown, true},
		{"x dominates", Reading{1000, 800}, sim.DirLeft, true},
		{"y dominates", Reading{800, 0}, sim.DirDown, true},
		{"tie goes vertical", Reading{1000, 1000}, sim.DirUp, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := s.Decode(tc.r)
			if ok != tc.ok {
				t.Fatalf("Decode(%v) ok = %v, expected %v", tc.r, ok, tc.ok)
			}
			if ok && d != tc.expected {
				t.Errorf("Decode(%v) = %v, expected %v", tc.r, d, tc.expected)
			}
		})
	}
}

func TestDecodeZeroDeadzone(t *testing.T) {
	s := Stick{Max: 1023, Center: 512}

	// Any deflection counts; only a perfectly centred stick is ignored.
	if _, ok := s.Decode(Reading{512, 512}); ok {
		t.Error("centered stick should not select a direction")
	}
	if d, ok := s.Decode(Reading{513, 512}); !ok || d != sim.DirRight {
		t.Errorf("Decode(513,512) = %v/%v, expected right/true", d, ok)
	}
	if d, ok := s.Decode(Reading{512, 511}); !ok || d != sim.DirUp {
		t.Errorf("Decode(512,511) = %v/%v, expected up/true", d, ok)
	}
}

func TestReadingForRoundTrip(t *testing.T) {
	sticks := []Stick{
		DefaultStick(),
		{Max: 1023, Center: 512},
		{Max: 4095, Center: 2048, Deadzone: 100, InvertY: true},
	}
	dirs := []sim.Direction{sim.DirUp, sim.DirRight, sim.DirDown, sim.DirLeft}

	for _, s := range sticks {
		for _, d := range dirs {
			got, ok := s.Decode(s.ReadingFor(d))
			if !ok || got != d {
				t.Errorf("stick %+v: Decode(ReadingFor(%v)) = %v/%v", s, d, got, ok)
			}
		}
	}
}

func TestStickValidate(t *testing.T) {
	tests := []struct {
		name  string
		stick Stick
		valid bool
	}{
		{"default", DefaultStick(), true},
		{"zero deadzone", Stick{Max: 1023, Center: 512}, true},
		{"center out of range", Stick{Max: 1023, Center: 2000}, false},
		{"negative deadzone", Stick{Max: 1023, Center: 512, Deadzone: -1}, false},
		{"deadzone swallows range", Stick{Max: 1023, Center: 512, Deadzone: 600}, false},
		{"zero max", Stick{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.stick.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestKeyboardLatchesOneRead(t *testing.T) {
	s := DefaultStick()
	k := NewKeyboard(s)

	if r := k.Read(); r != s.Centered() {
		t.Errorf("initial Read() = %v, expected centered", r)
	}

	k.Push(core.ActionLeft)
	if d, ok := s.Decode(k.Read()); !ok || d != sim.DirLeft {
		t.Errorf("Read() after left = %v/%v, expected left", d, ok)
	}
	if r := k.Read(); r != s.Centered() {
		t.Errorf("second Read() = %v, expected recentered", r)
	}

	k.Push(core.ActionUp)
	k.Push(core.ActionDown)
	if d, _ := s.Decode(k.Read()); d != sim.DirDown {
		t.Errorf("Read() = %v, expected latest push (down)", d)
	}

	k.Push(core.ActionPause)
	if r := k.Read(); r != s.Centered() {
		t.Errorf("non-directional push moved the stick: %v", r)
	}
}

func TestButtonTakeOnce(t *testing.T) {
	var b Button
	if b.Take() {
		t.Error("Take() on fresh button should be false")
	}

	b.Press()
	b.Press()
	if !b.Take() {
		t.Error("Take() after press should be true")
	}
	if b.Take() {
		t.Error("Take() should clear the flag")
	}
	if b.Presses() != 2 {
		t.Errorf("Presses() = %d, expected 2", b.Presses())
	}
}

func TestButtonConcurrentPress(t *testing.T) {
	var b Button
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				b.Press()
			}
		}()
	}
	wg.Wait()

	if b.Presses() != 800 {
		t.Errorf("Presses() = %d, expected 800", b.Presses())
	}
	if !b.Take() {
		t.Error("Take() should observe concurrent presses")
	}
}

func TestRandomStaysInRange(t *testing.T) {
	s := DefaultStick()
	src := NewRandom(s, rand.New(rand.NewSource(1)))
	for range 1000 {
		r := src.Read()
		if r.X < 0 || r.X > s.Max || r.Y < 0 || r.Y > s.Max {
			t.Fatalf("Read() = %v outside [0,%d]", r, s.Max)
		}
	}
}
