package config

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant is a named preset of feature flags.
type Variant string

const (
	// VariantClassic is the obstacle game with free steering.
	VariantClassic Variant = "classic"
	// VariantGuarded blocks reversals and makes the stick hair-trigger.
	VariantGuarded Variant = "guarded"
	// VariantTimed adds the food countdown.
	VariantTimed Variant = "timed"
	// VariantHazard adds hazard food.
	VariantHazard Variant = "hazard"
	// VariantDeluxe enables everything, including sound and the intro.
	VariantDeluxe Variant = "deluxe"
)

// AllVariants returns every variant in display order.
func AllVariants() []Variant {
	return []Variant{VariantClassic, VariantGuarded, VariantTimed, VariantHazard, VariantDeluxe}
}

// Description returns a one-line summary of the variant.
func (v Variant) Description() string {
	switch v {
	case VariantClassic:
		return "Obstacle after two foods, reversals allowed"
	case VariantGuarded:
		return "Reversals ignored, no stick deadzone"
	case VariantTimed:
		return "Food expires after a countdown from level 3"
	case VariantHazard:
		return "Hazard food costs a point from level 4"
	case VariantDeluxe:
		return "Countdown, hazard food, sound and intro screen"
	default:
		return ""
	}
}

// ParseVariant resolves a variant name. The empty string is classic.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return VariantClassic, nil
	}
	for _, v := range AllVariants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// ApplyVariant modifies the config for a variant. Flags the variant does
// not mention keep their loaded values.
func ApplyVariant(cfg *SnakeConfig, v Variant) {
	switch v {
	case VariantClassic:
		cfg.Features.Obstacle = true
	case VariantGuarded:
		cfg.Features.Obstacle = true
		cfg.Snake.Reversal = "block"
		cfg.Joystick.Deadzone = 0
	case VariantTimed:
		cfg.Features.Obstacle = true
		cfg.Features.Countdown = true
	case VariantHazard:
		cfg.Features.Obstacle = true
		cfg.Features.Hazard = true
	case VariantDeluxe:
		cfg.Features.Obstacle = true
		cfg.Features.Countdown = true
		cfg.Features.Hazard = true
		cfg.Features.Sound = true
		cfg.Features.Intro = true
	}
}
