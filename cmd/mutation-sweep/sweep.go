package main

import (
	"fmt"
	"sort"
	"sync"

	"dorian-ca/internal/sims/emotion"
)

type paramSet struct {
	mutationChance float64
	birthChance    float64
	decayBase      float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("mutation=%.3f birth=%.2f decay=%.3f", p.mutationChance, p.birthChance, p.decayBase)
}

type scenarioResult struct {
	params      paramSet
	seed        int64
	finalActive int
	peakActive  int
	peakStep    int
	extinctAt   int
	diversity   int
	dominant    emotion.Kind
}

// scenarioSummary aggregates the runs of one paramSet across seeds.
type scenarioSummary struct {
	params        paramSet
	runs          int
	meanActive    float64
	meanDiversity float64
	extinctions   int
	dominants     map[emotion.Kind]int
}

func (s scenarioSummary) topDominant() emotion.Kind {
	best, count := emotion.KindNone, 0
	for _, k := range emotion.Kinds() {
		if s.dominants[k] > count {
			best, count = k, s.dominants[k]
		}
	}
	return best
}

func runScenario(base emotion.Config, params paramSet, seed int64, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Seed = seed
	cfg.Params.MutationChance = params.mutationChance
	cfg.Params.BirthChance = params.birthChance
	cfg.Params.DecayBase = params.decayBase

	world, err := emotion.NewWorld("sweep", cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{params: params, seed: seed, extinctAt: -1}
	for step := 0; step < steps; step++ {
		world.Step()
		s := world.Stats()
		if s.ActiveCells > res.peakActive {
			res.peakActive = s.ActiveCells
			res.peakStep = step + 1
		}
		if s.ActiveCells == 0 {
			res.extinctAt = step + 1
			break
		}
	}
	final := world.Stats()
	res.finalActive = final.ActiveCells
	res.dominant = final.Dominant
	res.diversity = len(final.Top(emotion.NumKinds))
	return res, nil
}

// sweep evaluates every paramSet against every seed on a worker pool and
// returns one summary per paramSet, best first.
func sweep(base emotion.Config, sets []paramSet, seeds []int64, steps, workers int) ([]scenarioSummary, error) {
	type job struct {
		params paramSet
		seed   int64
	}
	type outcome struct {
		res scenarioResult
		err error
	}
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan job)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := runScenario(base, j.params, j.seed, steps)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for _, seed := range seeds {
				jobs <- job{params: params, seed: seed}
			}
		}
		close(jobs)
	}()

	byParams := map[paramSet]*scenarioSummary{}
	var firstErr error
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		res := out.res
		sum, ok := byParams[res.params]
		if !ok {
			sum = &scenarioSummary{params: res.params, dominants: map[emotion.Kind]int{}}
			byParams[res.params] = sum
		}
		sum.runs++
		sum.meanActive += float64(res.finalActive)
		sum.meanDiversity += float64(res.diversity)
		if res.extinctAt >= 0 {
			sum.extinctions++
		}
		if res.dominant != emotion.KindNone {
			sum.dominants[res.dominant]++
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	all := make([]scenarioSummary, 0, len(byParams))
	for _, sum := range byParams {
		sum.meanActive /= float64(sum.runs)
		sum.meanDiversity /= float64(sum.runs)
		all = append(all, *sum)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.meanDiversity != b.meanDiversity {
			return a.meanDiversity > b.meanDiversity
		}
		if a.meanActive != b.meanActive {
			return a.meanActive > b.meanActive
		}
		return a.params.String() < b.params.String()
	})
	return all, nil
}
