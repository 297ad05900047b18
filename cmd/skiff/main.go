package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/plus3/skiff/config"
	"github.com/plus3/skiff/driver"
	ebitendriver "github.com/plus3/skiff/driver/ebiten"
	"github.com/plus3/skiff/driver/term"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
	"github.com/plus3/skiff/scene"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	scenePath := flag.String("scene", "", "Path to a YAML scene file. Overrides [scene] path.")
	termMode := flag.Bool("term", false, "Run in the terminal instead of a window.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector overlay.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}
	if *debug {
		cfg.Debug.Enabled = true
	}

	// the terminal owns stderr while it runs
	if *termMode && cfg.Logging.File == "" {
		cfg.Logging.Level = "fatal"
	}
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.NewString()))

	sched := ecs.NewScheduler(ecs.WithLogger(log.Named("ecs")))
	arena := cfg.ArenaBox()

	g, err := loadScene(sched, cfg.Scene.Path, arena)
	if err != nil {
		return err
	}
	log.Info("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.Int("objects", sched.Len()),
		zap.Float64("arena_width", arena.Width),
		zap.Float64("arena_height", arena.Height),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	workers, ctx := errgroup.WithContext(ctx)

	d := driver.New(sched, log.Named("driver"))

	if cfg.Scene.Watch && cfg.Scene.Path != "" {
		w, err := scene.NewWatcher(cfg.Scene.Path, scene.DefaultDebounce)
		if err != nil {
			return err
		}
		workers.Go(func() error {
			defer w.Close()
			watchScene(ctx, w, d, g, arena, log.Named("scene"))
			return nil
		})
	}

	hud := func() string {
		return fmt.Sprintf("score %d  objects %d", g.scene.Score.Get(), sched.Len())
	}

	if *termMode {
		err = term.Run(ctx, d, term.Options{
			Arena: arena,
			TPS:   cfg.Window.TPS,
			HUD:   hud,
			Log:   log.Named("term"),
		})
	} else {
		err = ebitendriver.Run(ctx, d, ebitendriver.Options{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			TPS:    cfg.Window.TPS,
			Debug:  cfg.Debug.Enabled,
			HUD:    hud,
			Log:    log.Named("ebiten"),
		})
	}

	// the frame loop has ended, stop the background workers
	stop()
	if werr := workers.Wait(); err == nil {
		err = werr
	}
	log.Info("shutdown", zap.Int("score", g.scene.Score.Get()))
	return err
}

// game holds the scene currently live in the scheduler. It is only touched
// from the frame loop.
type game struct {
	scene *scene.Scene
}

func loadScene(sched *ecs.Scheduler, path string, arena geom.Box) (*game, error) {
	if path != "" {
		sc, err := scene.Reload(sched, path, arena)
		if err != nil {
			return nil, err
		}
		return &game{scene: sc}, nil
	}

	sc, err := scene.Build(sched, scene.Default(), arena)
	if err != nil {
		return nil, err
	}
	sched.Replace(sc.Objects)
	return &game{scene: sc}, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
