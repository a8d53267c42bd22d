package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/joysnake/internal/config"
)

// newLogger builds the logger from the global flags. Logs go to --log-file
// when set, otherwise to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "joysnake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the config file, applies --variant and validates.
func loadConfig() (config.SnakeConfig, config.Variant, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", "", err
	}

	// Without --variant the file's own feature flags stand.
	var variant config.Variant
	if flagVariant != "" {
		variant, err = config.ParseVariant(flagVariant)
		if err != nil {
			return cfg, "", "", err
		}
		config.ApplyVariant(&cfg, variant)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", "", fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, variant, source, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
