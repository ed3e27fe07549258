package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"dorian-ca/internal/sims/emotion"
)

func main() {
	steps := flag.Int("steps", 400, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seedCount := flag.Int("seeds", 4, "seeds evaluated per parameter set")
	width := flag.Int("width", 96, "grid width for sweep runs")
	height := flag.Int("height", 96, "grid height for sweep runs")
	configPath := flag.String("config", "", "YAML configuration used as the sweep baseline")
	top := flag.Int("top", 10, "number of results to print")
	flag.Parse()

	base, err := emotion.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	base.Width = *width
	base.Height = *height
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid sweep grid: %v", err)
	}

	mutationOptions := []float64{0, 0.005, 0.02, 0.05}
	birthOptions := []float64{0.1, 0.3, 0.5}
	decayOptions := []float64{0.005, 0.01, 0.02}

	var sets []paramSet
	for _, m := range mutationOptions {
		for _, b := range birthOptions {
			for _, d := range decayOptions {
				sets = append(sets, paramSet{mutationChance: m, birthChance: b, decayBase: d})
			}
		}
	}
	seeds := make([]int64, *seedCount)
	for i := range seeds {
		seeds[i] = base.Seed + int64(i)
	}

	fmt.Printf("Sweeping %d parameter sets x %d seeds (%d workers, %d steps)\n", len(sets), len(seeds), *workers, *steps)
	start := time.Now()
	all, err := sweep(base, sets, seeds, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) diversity=%.2f active=%.1f extinct=%d/%d dominant=%s params=%s\n",
			i+1, res.meanDiversity, res.meanActive, res.extinctions, res.runs, res.topDominant(), res.params)
	}
}
