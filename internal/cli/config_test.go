package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatpath.toml")
	body := "algo = \"dijkstra\"\noutput_dir = \"/tmp/routes\"\nreach = 2\naxis = \"x\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Algo != "dijkstra" {
		t.Errorf("Algo = %q, want dijkstra", cfg.Algo)
	}
	if cfg.OutputDir != "/tmp/routes" {
		t.Errorf("OutputDir = %q, want /tmp/routes", cfg.OutputDir)
	}
	if cfg.Reach == nil || *cfg.Reach != 2 {
		t.Errorf("Reach = %v, want 2", cfg.Reach)
	}
	if cfg.Axis != "x" {
		t.Errorf("Axis = %q, want x", cfg.Axis)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatpath.toml")
	if err := os.WriteFile(path, []byte("algo = \"fringe\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Algo != "fringe" {
		t.Errorf("Algo = %q, want fringe", cfg.Algo)
	}
	if cfg.Reach != nil {
		t.Errorf("unset reach should stay nil, got %d", *cfg.Reach)
	}
	if cfg.OutputDir != "" || cfg.Axis != "" {
		t.Errorf("unset strings should stay empty, got %q %q", cfg.OutputDir, cfg.Axis)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("want an error for a missing config file")
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatpath.toml")
	if err := os.WriteFile(path, []byte("algo = [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Fatal("want an error for malformed TOML")
	}
}

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := &fileConfig{Algo: "astar"}
	ctx := withConfig(context.Background(), cfg)

	if got := configFromContext(ctx); got != cfg {
		t.Error("configFromContext should return the attached config")
	}

	empty := configFromContext(context.Background())
	if empty == nil {
		t.Fatal("configFromContext should fall back to an empty config")
	}
	if empty.Algo != "" || empty.Reach != nil {
		t.Error("fallback config should be zero-valued")
	}
}
