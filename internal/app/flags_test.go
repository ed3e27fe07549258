package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dorian-ca/internal/sims/emotion"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "canvas", "-scale", "2", "-seed", "9", "-set", "w=30", "-set", "birth_chance=0.5", "-step-every", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "canvas" || cfg.Scale != 2 || cfg.Seed != 9 || cfg.StepEvery != 1 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.Overrides.Map()
	if m["w"] != "30" || m["birth_chance"] != "0.5" {
		t.Fatalf("overrides = %v", m)
	}
}

func TestKVListMapSkipsMalformed(t *testing.T) {
	l := KVList{"a=1", "broken", " b = 2 ", "a=3"}
	m := l.Map()
	if len(m) != 2 || m["a"] != "3" || m["b"] != "2" {
		t.Fatalf("map = %v", m)
	}
}

func TestBuildSimFromRegistry(t *testing.T) {
	cfg := NewConfig()
	cfg.Overrides = KVList{"w=24", "h=12"}
	sim, err := BuildSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	w := sim.(*emotion.World)
	if w.Size().W != 24 || w.Size().H != 12 {
		t.Fatalf("size = %+v", w.Size())
	}
	if w.Grid().Config().Seed != cfg.Seed {
		t.Fatalf("seed = %d, want %d", w.Grid().Config().Seed, cfg.Seed)
	}
	if w.Stats().ActiveCells != 25 {
		t.Fatalf("active = %d, want 25", w.Stats().ActiveCells)
	}
}

func TestBuildSimUnknown(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "nope"
	if _, err := BuildSim(cfg); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestBuildSimFromFile(t *testing.T) {
	base := emotion.DefaultConfig()
	base.Width, base.Height = 40, 20
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := base.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.ConfigPath = path
	cfg.Overrides = KVList{"max_age=99"}
	sim, err := BuildSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	w := sim.(*emotion.World)
	if w.Size().W != 40 || w.Size().H != 20 {
		t.Fatalf("size = %+v", w.Size())
	}
	if w.Grid().Params().MaxAge != 99 {
		t.Fatalf("max age = %d", w.Grid().Params().MaxAge)
	}

	if err := os.WriteFile(path, []byte("grid: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildSim(cfg); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestLoopUsesConfigFileSeed(t *testing.T) {
	base := emotion.DefaultConfig()
	base.Width, base.Height = 20, 20
	base.Seed = 4242
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := base.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.ConfigPath = path
	sim, err := BuildSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	loop := NewLoop(sim, cfg)
	if loop.Seed() != 4242 {
		t.Fatalf("loop seed = %d, want the file seed 4242", loop.Seed())
	}

	loop.Reset(loop.Seed())
	viaLoop := append([]uint8(nil), sim.Cells()...)
	sim.Reset(0)
	if string(viaLoop) != string(sim.Cells()) {
		t.Fatal("resetting with the loop seed must match a reset with the configured seed")
	}
}

func TestSetUsageListsPartitions(t *testing.T) {
	usage := SetUsage()
	for _, name := range emotion.PartitionNames() {
		if !strings.Contains(usage, name) {
			t.Fatalf("usage %q does not mention partition %q", usage, name)
		}
	}
}
