package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/entropy"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	b := cfg.Board()
	if b.Frame != 500*time.Millisecond || b.InvertHold != 5 || b.RecoveryHold != 5 {
		t.Fatalf("unexpected board config %+v", b)
	}
	want, _ := core.Lookup(core.DefaultPattern)
	if b.Seed != want {
		t.Fatal("board seed does not match the default pattern")
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lifeboard", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-pattern", "blinker",
		"-frame", "250ms",
		"-hold", "3",
		"-seed", "42",
		"-backend", "gpio",
		"-button-a", "5",
		"-button-b", "6",
		"-quiet",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	b := cfg.Board()
	blinker, _ := core.Lookup("blinker")
	if b.Seed != blinker || b.Frame != 250*time.Millisecond || b.InvertHold != 3 {
		t.Fatalf("flags not applied: %+v", b)
	}
	if cfg.GPIO.ButtonA != 5 || cfg.GPIO.ButtonB != 6 || cfg.Backend != BackendGPIO || !cfg.Quiet {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cases := map[string]func(c *Config){
		"pattern": func(c *Config) { c.Pattern = "spaceship" },
		"frame":   func(c *Config) { c.Frame = 0 },
		"hold":    func(c *Config) { c.Hold = 1 << 20 },
		"scale":   func(c *Config) { c.Scale = 0 },
		"backend": func(c *Config) { c.Backend = "serial" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", name)
			continue
		}
		if !strings.Contains(err.Error(), name) {
			t.Errorf("%s: error %q does not mention the setting", name, err)
		}
	}
}

func TestEntropySelection(t *testing.T) {
	cfg := NewConfig()
	if _, ok := cfg.Entropy().(*entropy.Reader); !ok {
		t.Fatalf("seed 0 should use the system pool, got %T", cfg.Entropy())
	}
	cfg.Seed = 7
	a, _ := cfg.Entropy().Uint64()
	b, _ := cfg.Entropy().Uint64()
	if a != b {
		t.Fatal("fixed seed must replay the same words")
	}
}

func TestLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.Logger(&buf).Printf("hello")
	if !strings.Contains(buf.String(), "lifeboard: ") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
	buf.Reset()
	cfg.Quiet = true
	cfg.Logger(&buf).Printf("hello")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
}
