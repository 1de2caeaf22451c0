package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "320", "-gps", "120", "-seed", "9", "-hud", "0"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 120 || cfg.GPS != 120 || cfg.Seed != 9 || cfg.HUD != 0 {
		t.Fatalf("config = %+v", cfg)
	}

	m := cfg.SimConfig()
	if m["w"] != "320" || m["h"] != "120" || m["seed"] != "9" {
		t.Fatalf("SimConfig() = %v", m)
	}
}
