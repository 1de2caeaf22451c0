package conway

import "strconv"

// Config controls the Life board dimensions and initial seed.
type Config struct {
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns a board that fills a 640x480 window at 4px per cell.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 120, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable or non-positive
// sizes keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
