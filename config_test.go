package gocalc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fortio.org/log"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Level() != log.Info {
		t.Errorf("want info level but got %v", cfg.Level())
	}
}

func TestDecodeConfig(t *testing.T) {
	input := `
prompt: "calc> "
fold: true
prelude: false
precision: 6
log_level: verbose
variables:
  rate: 0.25
  n: 12
`
	cfg, err := DecodeConfig(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Prompt:    "calc> ",
		Fold:      true,
		Prelude:   false,
		Precision: 6,
		LogLevel:  "verbose",
		Variables: map[string]float64{"rate": 0.25, "n": 12},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Level() != log.Verbose {
		t.Errorf("want verbose level but got %v", cfg.Level())
	}

	env := NewEnv()
	if err := cfg.Apply(env); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]float64{"rate": 0.25, "n": 12}, env.Snapshot()); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeConfigUnknownField(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("colour: red\n"))
	if err == nil {
		t.Fatal("want error for unknown field")
	}
	if !strings.Contains(err.Error(), "colour") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestDecodeConfigValidation(t *testing.T) {
	input := `
log_level: loud
precision: -3
variables:
  X1: 1
  define: 2
  ok: 3
`
	_, err := DecodeConfig(strings.NewReader(input))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("want ConfigError but got %v", err)
	}
	if len(ce.Issues) != 4 {
		t.Errorf("want 4 issues but got %d:\n%v", len(ce.Issues), err)
	}
	if !strings.HasPrefix(err.Error(), "config validation failed:") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gocalc.yml")
	if err := os.WriteFile(path, []byte("fold: true\nvariables:\n  g: 9.81\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Fold || !cfg.Prelude || cfg.Prompt != ">> " || cfg.Variables["g"] != 9.81 {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("want error for missing file")
	}
	if _, err := LoadConfig(""); err == nil {
		t.Error("want error for empty path")
	}
}
