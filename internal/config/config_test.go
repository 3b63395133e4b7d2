package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("IMGFIT_CODEC", "")
	t.Setenv("IMGFIT_TARGET", "")
	t.Setenv("IMGFIT_OUT_DIR", "")
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir()) // no ~/.imgfit.toml

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Codec != "jpeg" || cfg.OutDir != "." || cfg.Target != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMGFIT_CODEC", "png")
	t.Setenv("IMGFIT_TARGET", "250KB")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Codec != "png" {
		t.Errorf("codec: got %q", cfg.Codec)
	}
	if cfg.Target != "250KB" {
		t.Errorf("target: got %q", cfg.Target)
	}
	if cfg.OutDir != "." {
		t.Errorf("out dir: got %q", cfg.OutDir)
	}
}

func TestFileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("IMGFIT_CODEC", "png")

	path := filepath.Join(t.TempDir(), "imgfit.toml")
	if err := os.WriteFile(path, []byte("codec = \"webp\"\ntarget = \"1MB\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Codec != "webp" {
		t.Errorf("codec: got %q, want file value", cfg.Codec)
	}
	if cfg.Target != "1MB" {
		t.Errorf("target: got %q", cfg.Target)
	}
	// Keys absent from the file keep their previous value.
	if cfg.OutDir != "." {
		t.Errorf("out dir: got %q", cfg.OutDir)
	}
}

func TestExplicitMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing explicit config file did not error")
	}
}

func TestHomeFileUsedWhenPresent(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, ".imgfit.toml"), []byte("out_dir = \"/tmp/out\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutDir != "/tmp/out" {
		t.Errorf("out dir: got %q", cfg.OutDir)
	}
}
