package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cursor-chase/audio"
	"github.com/lixenwraith/cursor-chase/config"
	"github.com/lixenwraith/cursor-chase/display"
	"github.com/lixenwraith/cursor-chase/engine"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/logger"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/render"
	"github.com/lixenwraith/cursor-chase/status"
	"github.com/lixenwraith/cursor-chase/storage"
)

func main() {
	fs := flag.NewFlagSet("cursor-chase", flag.ExitOnError)
	configPath := fs.String(config.FlagConfig, "", "TOML config file")
	fs.String(config.FlagScores, parameter.DefaultScoresPath, "High score file")
	fs.Bool(config.FlagDebug, false, "Write logs under the log dir and show metrics")
	fs.Bool(config.FlagMute, false, "Start with sound muted")
	fs.String(config.FlagPolicy, "strict", "Boundary policy: strict, lenient")
	fs.Uint64(config.FlagSeed, 0, "RNG seed (0 = time based)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, ".env")
	if err == nil {
		err = config.ApplyFlags(&cfg, fs)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cursor-chase: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cursor-chase: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log, flush, err := logger.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer flush()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Terminal must be restored before the trace is printed
	crash := func(where string) {
		if r := recover(); r != nil {
			fini()
			log.Error("crash", zap.String("where", where), zap.Any("panic", r), zap.Stack("stack"))
			flush()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCURSOR-CHASE %s CRASHED: %v\x1b[0m\r\n", where, r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}
	defer crash("MAIN")

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	reg := status.NewRegistry()
	renderer := render.NewTerminalRenderer(screen, reg, cfg.Debug)

	high := storage.NewHighScore(storage.NewFileStore(cfg.ScoresPath), parameter.HighScoreKey, log)

	opts := cfg.GameOptions()
	game := engine.NewGame(opts, renderer.Viewport(), engine.Deps{
		HighScore: high,
		Status:    reg,
		Logger:    log,
	})

	loop := engine.NewLoop(game, engine.NewTimeProvider(), reg, log)
	loop.SetMaxBacklog(cfg.Loop.MaxBacklog)

	presenter := display.NewPresenter(renderer, opts.Device)
	loop.Register(presenter)

	sound := audio.NewSoundManager(cfg.AudioOptions(), reg, log)
	if err := sound.Initialize(); err != nil {
		log.Warn("continuing without audio", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(cfg.Audio.Mute)
	renderer.SetMuted(cfg.Audio.Mute)
	loop.Register(sound)

	log.Info("starting",
		zap.String("policy", cfg.Policy),
		zap.String("device", opts.Device.String()),
		zap.Uint64("seed", opts.Seed),
		zap.String("scores", cfg.ScoresPath),
		zap.Int("high_score", high.Best()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	translator := input.NewTranslator(game.Slot())

	// Event poller; PollEvent returns nil once the screen is finalized
	eg.Go(func() error {
		defer crash("EVENT POLLER")
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			switch translator.HandleEvent(ev) {
			case input.IntentQuit:
				cancel()
				return nil
			case input.IntentToggleMute:
				muted := sound.ToggleMute()
				renderer.SetMuted(muted)
			case input.IntentResize:
				screen.Sync()
				loop.RequestViewport(renderer.Viewport())
			}
		}
	})

	// Simulation and render driver; finalizing the screen releases the poller
	eg.Go(func() error {
		defer crash("GAME LOOP")
		defer fini()

		ticker := time.NewTicker(cfg.Loop.FrameInterval)
		defer ticker.Stop()
		return loop.Run(ctx, ticker.C, presenter.Wrap(renderer))
	})

	err = eg.Wait()
	log.Info("exiting",
		zap.Int("high_score", high.Best()),
		zap.String("metrics", reg.Summary()),
	)
	return err
}
