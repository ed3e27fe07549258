package main

import (
	"testing"

	"dorian-ca/internal/sims/emotion"
)

func smallBase() emotion.Config {
	cfg := emotion.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	return cfg
}

func TestRunScenarioDeterministic(t *testing.T) {
	p := paramSet{mutationChance: 0.02, birthChance: 0.3, decayBase: 0.01}
	a, err := runScenario(smallBase(), p, 5, 60)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runScenario(smallBase(), p, 5, 60)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed produced %+v and %+v", a, b)
	}
	if a.peakActive < 25 {
		t.Fatalf("peak active %d below the initial seed square", a.peakActive)
	}
}

func TestRunScenarioNoBirthsDiesOut(t *testing.T) {
	base := smallBase()
	base.Params.MaxAge = 5
	res, err := runScenario(base, paramSet{birthChance: 0}, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if res.extinctAt < 0 || res.finalActive != 0 || res.dominant != emotion.KindNone {
		t.Fatalf("expected extinction, got %+v", res)
	}
}

func TestSweepAggregatesAllRuns(t *testing.T) {
	sets := []paramSet{
		{mutationChance: 0, birthChance: 0.3, decayBase: 0.01},
		{mutationChance: 0.05, birthChance: 0.3, decayBase: 0.01},
	}
	seeds := []int64{1, 2, 3}
	all, err := sweep(smallBase(), sets, seeds, 30, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(sets) {
		t.Fatalf("got %d summaries", len(all))
	}
	for _, s := range all {
		if s.runs != len(seeds) {
			t.Fatalf("%s ran %d times", s.params, s.runs)
		}
	}
	if all[0].meanDiversity < all[1].meanDiversity {
		t.Fatal("summaries must be sorted by diversity")
	}
}
