// Package game replays recorded frames through the arena and scores every
// tick with the configured reward set.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/carball/arena"
	"github.com/pthm-cable/carball/config"
	"github.com/pthm-cable/carball/replay"
	"github.com/pthm-cable/carball/rewards"
	"github.com/pthm-cable/carball/state"
	"github.com/pthm-cable/carball/telemetry"
)

// Options configures a replay run.
type Options struct {
	Config        *config.Config               // nil = config.Cfg()
	OutputDir     string                       // empty = no CSV output
	LogStats      bool                         // slog a summary per agent at episode end
	StatsCallback func(telemetry.AgentSummary) // called for every episode summary

	// TickCallback receives every scored snapshot.
	TickCallback func(*state.GameState, map[state.AgentID]float64)
}

// Game holds the state of one replay run.
type Game struct {
	cfg    *config.Config
	arena  *arena.Arena
	reward *rewards.Combined

	tracker       *telemetry.Tracker
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	writeTicks    bool
	statsCallback func(telemetry.AgentSummary)
	tickCallback  func(*state.GameState, map[state.AgentID]float64)

	shared  rewards.SharedInfo
	started bool
	ticks   int
}

// NewGameWithOptions builds the reward set and output for a run.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	reward, err := rewards.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("building rewards: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	return &Game{
		cfg:           cfg,
		arena:         arena.New(),
		reward:        reward,
		tracker:       telemetry.NewTracker(),
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		outputManager: om,
		logStats:      opts.LogStats,
		writeTicks:    cfg.Telemetry.WriteTicks,
		statsCallback: opts.StatsCallback,
		tickCallback:  opts.TickCallback,
	}, nil
}

// Run steps through every tick group in frames.
func (g *Game) Run(frames []replay.Frame) error {
	for _, group := range replay.Group(frames) {
		if err := g.Step(group); err != nil {
			return err
		}
	}
	return nil
}

// Step applies one tick of frames and scores it. A new episode number
// clears the arena and resets the reward set.
func (g *Game) Step(group replay.TickGroup) error {
	newEpisode := !g.started || group.Episode != g.tracker.Episode()
	if newEpisode {
		if g.started {
			g.flushEpisode()
		}
		g.arena.Clear()
		g.tracker.Begin(group.Episode)
		g.shared = rewards.SharedInfo{}
		g.started = true
	}

	g.perf.StartTick()
	defer g.perf.EndTick()

	g.perf.StartPhase(telemetry.PhaseApplyFrames)
	g.arena.SetTick(group.Tick)
	for i := range group.Frames {
		f := &group.Frames[i]
		car, err := f.Car()
		if err != nil {
			return fmt.Errorf("episode %d tick %d agent %s: %w", group.Episode, group.Tick, f.Agent, err)
		}
		g.arena.UpsertCar(state.AgentID(f.Agent), car)
		g.arena.SetBall(f.Ball())
	}
	if left := g.arena.Prune(); len(left) > 0 {
		slog.Debug("cars left arena", "tick", group.Tick, "agents", left)
	}

	g.perf.StartPhase(telemetry.PhaseSnapshot)
	s := g.arena.Snapshot()
	agents := s.Agents()
	g.perf.StartPhase(telemetry.PhaseRewards)
	if newEpisode {
		g.reward.Reset(agents, s, g.shared)
	}

	rw := g.reward.GetRewards(agents, s, nil, nil, g.shared)
	g.tracker.Record(rw)
	g.ticks++

	g.perf.StartPhase(telemetry.PhaseOutput)
	if g.tickCallback != nil {
		g.tickCallback(s, rw)
	}
	if g.writeTicks && g.outputManager != nil {
		g.writeTick(group, agents, s, rw)
	}
	return nil
}

// Tick returns the number of ticks scored so far.
func (g *Game) Tick() int {
	return g.ticks
}

// PerfStats returns step timing over the recent window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perf.Stats()
}

// Unload flushes the final episode and closes output files.
func (g *Game) Unload() error {
	if g.started {
		g.flushEpisode()
		g.started = false
	}
	if g.logStats {
		slog.Info("perf", "stats", g.perf.Stats())
	}
	return g.outputManager.Close()
}
