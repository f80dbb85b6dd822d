package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/carball/state"
)

// AgentSummary holds reward statistics for one agent over one episode.
type AgentSummary struct {
	Episode int     `csv:"episode"`
	Agent   string  `csv:"agent"`
	Ticks   int     `csv:"ticks"`
	Total   float64 `csv:"total"`
	Mean    float64 `csv:"mean"`
	Std     float64 `csv:"std"`
	Median  float64 `csv:"median"`
	Min     float64 `csv:"min"`
	Max     float64 `csv:"max"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s AgentSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("episode", s.Episode),
		slog.String("agent", s.Agent),
		slog.Int("ticks", s.Ticks),
		slog.Float64("total", s.Total),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("median", s.Median),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
	)
}

// Summarize computes statistics over one agent's per-tick rewards.
// Empty input gives a zero summary; a single sample has zero spread.
func Summarize(episode int, agent state.AgentID, values []float64) AgentSummary {
	s := AgentSummary{Episode: episode, Agent: string(agent), Ticks: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Total = floats.Sum(values)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	if len(values) == 1 {
		s.Mean = values[0]
		s.Median = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return s
}

// Tracker accumulates per-agent rewards for the current episode.
type Tracker struct {
	episode int
	series  map[state.AgentID][]float64
}

// NewTracker creates a tracker positioned at episode 0.
func NewTracker() *Tracker {
	return &Tracker{series: make(map[state.AgentID][]float64)}
}

// Episode returns the episode being tracked.
func (t *Tracker) Episode() int {
	return t.episode
}

// Begin discards accumulated rewards and starts a new episode.
func (t *Tracker) Begin(episode int) {
	t.episode = episode
	t.series = make(map[state.AgentID][]float64)
}

// Record appends one tick of rewards.
func (t *Tracker) Record(rewards map[state.AgentID]float64) {
	for agent, r := range rewards {
		t.series[agent] = append(t.series[agent], r)
	}
}

// Summaries returns one summary per agent seen this episode, sorted by agent.
func (t *Tracker) Summaries() []AgentSummary {
	agents := make([]state.AgentID, 0, len(t.series))
	for agent := range t.series {
		agents = append(agents, agent)
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i] < agents[j] })

	out := make([]AgentSummary, 0, len(agents))
	for _, agent := range agents {
		out = append(out, Summarize(t.episode, agent, t.series[agent]))
	}
	return out
}
