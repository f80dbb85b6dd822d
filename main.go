package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/carball/config"
	"github.com/pthm-cable/carball/game"
	"github.com/pthm-cable/carball/replay"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	framesPath := flag.String("frames", "", "Recorded frames CSV to score (required)")
	outputDir := flag.String("output-dir", "", "Output directory for reward CSVs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output per-episode summaries via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *framesPath == "" {
		slog.Error("-frames is required")
		os.Exit(1)
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	frames, err := replay.Load(*framesPath)
	if err != nil {
		slog.Error("failed to load frames", "path", *framesPath, "error", err)
		os.Exit(1)
	}

	g, err := game.NewGameWithOptions(game.Options{
		Config:    cfg,
		OutputDir: *outputDir,
		LogStats:  *logStats || cfg.Telemetry.LogEveryEpisode,
	})
	if err != nil {
		slog.Error("failed to start replay", "error", err)
		os.Exit(1)
	}

	slog.Info("scoring replay",
		"frames", len(frames),
		"terms", len(cfg.Rewards.Terms),
		"output_dir", *outputDir,
	)

	runErr := g.Run(frames)
	if err := g.Unload(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if runErr != nil {
		slog.Error("replay failed", "tick", g.Tick(), "error", runErr)
		os.Exit(1)
	}

	slog.Info("replay complete", "ticks", g.Tick())
}
