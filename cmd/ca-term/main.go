package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"dorian-ca/internal/app"
	"dorian-ca/internal/core"
	"dorian-ca/internal/render"
	_ "dorian-ca/internal/sims/emotion"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.StepEvery = 1
	cfg.TPS = 15
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("config", "sim", cfg.Sim, "seed", cfg.Seed, "config", cfg.ConfigPath, "overrides", cfg.Overrides.String())

	sim, err := app.BuildSim(cfg)
	if err != nil {
		logger.Error("building sim", "err", err)
		os.Exit(1)
	}
	loop := app.NewLoop(sim, cfg)
	if err := run(loop, cfg.TPS); err != nil {
		logger.Error("terminal session", "err", err)
		os.Exit(1)
	}
	logger.Info("session ended", "sim", sim.Name(), "seed", loop.Seed(), "status", strings.Join(loop.Status(), "; "))
}

func run(loop *app.Loop, tps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	sim := loop.Sim()
	size := sim.Size()
	sink := render.NewTerminalSink(screen, size.W, size.H)
	frames, _ := sim.(core.FrameSource)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	if tps <= 0 {
		tps = 15
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					loop.TogglePause()
				case ev.Key() == tcell.KeyEnter:
					loop.Resume()
				case ev.Rune() == 'n':
					loop.StepOnce()
				case ev.Rune() == 'r':
					loop.Reset(loop.Seed())
				case ev.Rune() == 's':
					loop.Reset(time.Now().UnixNano())
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					x, y := ev.Position()
					loop.SeedAt(x/2, y)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			loop.Frame()
			sink.SetStatus(strings.Join(loop.Status(), " | "))
			if frames != nil {
				if err := sink.DrawFrame(frames.Frame(1, 1)); err != nil {
					return err
				}
			}
		}
	}
}
