package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("curls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-seed", "7",
		"-workers", "4",
		"-zoom", "2.5",
		"-set", "spring_dampening=20",
		"-set", "workers=2",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != 7 || cfg.Zoom != 2.5 {
		t.Fatalf("seed/zoom = %d/%f", cfg.Seed, cfg.Zoom)
	}

	opts := cfg.SimOptions()
	if opts["seed"] != "7" {
		t.Fatalf("seed option = %q", opts["seed"])
	}
	if opts["workers"] != "2" {
		t.Fatalf("-set should override -workers, got %q", opts["workers"])
	}
	if opts["spring_dampening"] != "20" {
		t.Fatalf("spring_dampening option = %q", opts["spring_dampening"])
	}
}

func TestOverridesRejectMalformed(t *testing.T) {
	o := Overrides{}
	for _, bad := range []string{"nokey", "=1"} {
		if err := o.Set(bad); err == nil {
			t.Fatalf("Set(%q) should fail", bad)
		}
	}
	if err := o.Set("a=b=c"); err != nil || o["a"] != "b=c" {
		t.Fatalf("Set(a=b=c) = %v, stored %q", err, o["a"])
	}
}
