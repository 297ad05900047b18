package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	objectCount := flag.Int("objects", 2000, "The initial number of drifting objects.")
	seed := flag.Int64("seed", 1, "Random seed.")
	kill := flag.Float64("kill", 0.05, "Chance per tick that an object destroys one it overlaps.")
	spawn := flag.Float64("spawn", 0.001, "Chance per tick that an object spawns another.")
	die := flag.Float64("die", 0.001, "Chance per tick that an object destroys itself.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log every reconciliation that spawns or destroys.")
	flag.Parse()

	logCfg := zap.NewDevelopmentConfig()
	logCfg.DisableStacktrace = true
	if !*verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting stress test")

	// 1. Setup the swarm and scheduler
	swarm := &Swarm{
		Arena:   geom.NewBox(0, 0, 4096, 4096),
		Chances: Chances{Kill: *kill, Spawn: *spawn, Die: *die},
		Rand:    rand.New(rand.NewSource(*seed)),
		Max:     *objectCount * 2,
	}
	scheduler := ecs.NewScheduler(ecs.WithLogger(log.Named("ecs")))

	// 2. Populate the live collection
	log.Info("populating", zap.Int("objects", *objectCount))
	for i := 0; i < *objectCount; i++ {
		scheduler.Add(swarm.NewDrifter(scheduler))
	}

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Objects:        *objectCount,
		Seed:           *seed,
		Chances:        swarm.Chances,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			tickStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TickTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	report.Queries = swarm.Queries
	report.Hits = swarm.Hits
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("ticks", totalTicks), zap.Int("live", scheduler.Len()))

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
