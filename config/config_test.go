package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	p := cfg.Particles
	if p.Count != 100 {
		t.Errorf("count = %d, want 100", p.Count)
	}
	if p.MinSize != 1 || p.MaxSize != 3 {
		t.Errorf("size range = [%v, %v], want [1, 3]", p.MinSize, p.MaxSize)
	}
	if p.Speed != 0.05 {
		t.Errorf("speed = %v, want 0.05", p.Speed)
	}
	if p.ConnectionDistance != 100 {
		t.Errorf("connection distance = %v, want 100", p.ConnectionDistance)
	}
	if p.MinLifespan != 200 || p.MaxLifespan != 500 {
		t.Errorf("lifespan = [%d, %d), want [200, 500)", p.MinLifespan, p.MaxLifespan)
	}
	if p.FadeFrames != 60 {
		t.Errorf("fade frames = %d, want 60", p.FadeFrames)
	}
	if len(p.Palette) != 4 {
		t.Errorf("palette has %d entries, want 4", len(p.Palette))
	}
	if cfg.Pointer.InfluenceRadius != 120 {
		t.Errorf("influence radius = %v, want 120", cfg.Pointer.InfluenceRadius)
	}
	if cfg.Events.AdminUsername != "admin" {
		t.Errorf("admin username = %q, want admin", cfg.Events.AdminUsername)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("particles:\n  count: 7\nscreen:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Particles.Count != 7 {
		t.Errorf("count = %d, want 7", cfg.Particles.Count)
	}
	// Untouched fields keep their defaults
	if cfg.Particles.ConnectionDistance != 100 {
		t.Errorf("connection distance = %v, want default 100", cfg.Particles.ConnectionDistance)
	}
	if cfg.Derived.ScreenW32 != 640 {
		t.Errorf("derived width = %v, want 640", cfg.Derived.ScreenW32)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestComputeDerivedNormalizesRanges(t *testing.T) {
	cfg := &Config{}
	cfg.Particles.MinSize = 4
	cfg.Particles.MaxSize = 2
	cfg.Particles.MinLifespan = 300
	cfg.Particles.MaxLifespan = 100
	cfg.computeDerived()

	if cfg.Particles.MinSize != 2 || cfg.Particles.MaxSize != 4 {
		t.Errorf("size range not swapped: [%v, %v]", cfg.Particles.MinSize, cfg.Particles.MaxSize)
	}
	if cfg.Particles.MaxLifespan <= cfg.Particles.MinLifespan {
		t.Errorf("lifespan range empty: [%d, %d)", cfg.Particles.MinLifespan, cfg.Particles.MaxLifespan)
	}
	if cfg.Particles.FadeFrames != 1 {
		t.Errorf("fade frames = %d, want floor of 1", cfg.Particles.FadeFrames)
	}
	if len(cfg.Particles.Palette) != 1 {
		t.Errorf("expected fallback palette entry")
	}
	if filepath.Base(cfg.Derived.StoreFile) != "rotaractEvents.json" {
		t.Errorf("store file = %q", cfg.Derived.StoreFile)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Particles.Count = 42

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Particles.Count != 42 {
		t.Errorf("count = %d, want 42", loaded.Particles.Count)
	}
}
