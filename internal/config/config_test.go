package config

import "testing"

func TestDefault(t *testing.T) {
	got := Default()
	if got.Hidden || got.NoColor {
		t.Errorf("got %+v, want both false", got)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want %+v", cfg, Default())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FILESEQ_HIDDEN", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Hidden {
		t.Error("got false, want true")
	}
}
