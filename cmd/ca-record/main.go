package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dorian-ca/internal/app"
	"dorian-ca/internal/render"
	"dorian-ca/internal/sims/emotion"
	"dorian-ca/internal/stats"
)

type options struct {
	steps      int
	cellPixels int
	fps        int
	quality    int
	video      string
	chart      string
	dumpConfig string
}

func main() {
	cfg := app.NewConfig()
	cfg.StatsEvery = 20
	cfg.Bind(flag.CommandLine)

	var opts options
	flag.IntVar(&opts.steps, "steps", 600, "generations to simulate")
	flag.IntVar(&opts.cellPixels, "cell", 3, "pixels per cell in the video")
	flag.IntVar(&opts.fps, "fps", 15, "video frames per second")
	flag.IntVar(&opts.quality, "quality", 85, "JPEG quality of video frames")
	flag.StringVar(&opts.video, "out", "dorian.avi", "MJPEG AVI output path (empty to skip)")
	flag.StringVar(&opts.chart, "chart", "dorian.png", "population chart PNG path (empty to skip)")
	flag.StringVar(&opts.dumpConfig, "dump-config", "", "write the effective configuration as YAML")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err := run(logger, cfg, opts); err != nil {
		logger.Error("recording failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *app.Config, opts options) (err error) {
	sim, err := app.BuildSim(cfg)
	if err != nil {
		return err
	}
	world, ok := sim.(*emotion.World)
	if !ok {
		return fmt.Errorf("sim %q does not report emotion statistics", sim.Name())
	}
	if opts.cellPixels <= 0 {
		opts.cellPixels = 1
	}
	if opts.dumpConfig != "" {
		if err := world.Grid().Config().WriteYAML(opts.dumpConfig); err != nil {
			return err
		}
		logger.Info("wrote config", "path", opts.dumpConfig)
	}

	var rec *render.Recorder
	if opts.video != "" {
		size := world.Size()
		rec, err = render.NewRecorder(opts.video, size.W*opts.cellPixels, size.H*opts.cellPixels, opts.fps, opts.quality)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, rec.Close())
		}()
	}

	history := stats.NewHistory(0)
	history.Add(world.Stats())
	cell := float64(opts.cellPixels)
	every := max(cfg.StatsEvery, 1)
	logger.Info("recording", "sim", world.Name(), "size", fmt.Sprintf("%dx%d", world.Size().W, world.Size().H), "steps", opts.steps)

	for i := 0; i < opts.steps; i++ {
		if rec != nil {
			if err := rec.DrawFrame(world.Frame(cell, cell)); err != nil {
				return err
			}
		}
		world.Step()
		logger.Debug("step", "generation", world.Generation())
		if world.Generation()%every == 0 {
			s := world.Stats()
			history.Add(s)
			logger.Info("stats",
				"generation", s.Generation,
				"active", s.ActiveCells,
				"dominant", s.Dominant.String(),
				"energy", s.EnergyLevel(),
				"mean_intensity", fmt.Sprintf("%.3f", s.MeanIntensity),
			)
		}
	}

	if peak, ok := history.PeakActive(); ok {
		logger.Info("peak population", "generation", peak.Generation, "active", peak.ActiveCells, "dominant", peak.Dominant.String())
	}
	if rec != nil {
		logger.Info("wrote video", "path", opts.video, "frames", rec.Frames())
	}
	if opts.chart != "" {
		if err := writeChart(history, opts.chart); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", opts.chart, "samples", history.Len())
	}
	return nil
}

func writeChart(h *stats.History, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return h.WriteChart(f, 1024, 512)
}
