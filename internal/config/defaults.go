package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 19,
		},
		Snake: SnakeBody{
			StartX:   12,
			StartY:   16,
			Length:   3,
			Reversal: "allow",
		},
		Speed: SpeedConfig{
			InitialMS: 200,
			MinMS:     50,
			StepMS:    10,
		},
		Food: FoodConfig{
			PerLevel:       2,
			HazardLevel:    4,
			CountdownLevel: 3,
			CountdownMS:    5000,
		},
		Obstacle: ObstacleConfig{
			Trigger: 2,
			Margin:  1,
		},
		Joystick: JoystickConfig{
			Max:      1023,
			Center:   512,
			Deadzone: 200,
			InvertX:  true,
			InvertY:  true,
		},
		Features: FeatureFlags{
			Obstacle: true,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.5,
			BufferMS:   100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
