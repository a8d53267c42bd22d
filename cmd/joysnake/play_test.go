package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/joysnake/internal/config"
)

func TestAudioSettings(t *testing.T) {
	got := audioSettings(config.DefaultSnakeConfig().Audio)

	if got.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, expected 44100", got.SampleRate)
	}
	if got.Volume != 0.5 {
		t.Errorf("Volume = %v, expected 0.5", got.Volume)
	}
	if got.Buffer != 100*time.Millisecond {
		t.Errorf("Buffer = %v, expected 100ms", got.Buffer)
	}
}
