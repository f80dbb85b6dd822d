package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/carball/state"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   AgentSummary
	}{
		{"empty", nil, AgentSummary{Episode: 3, Agent: "a"}},
		{"single", []float64{0.4}, AgentSummary{Episode: 3, Agent: "a", Ticks: 1, Total: 0.4, Mean: 0.4, Median: 0.4, Min: 0.4, Max: 0.4}},
		{"four", []float64{1, 2, 3, 4}, AgentSummary{Episode: 3, Agent: "a", Ticks: 4, Total: 10, Mean: 2.5, Std: math.Sqrt(5.0 / 3.0), Median: 2, Min: 1, Max: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(3, "a", tt.values)
			if got.Episode != tt.want.Episode || got.Agent != tt.want.Agent || got.Ticks != tt.want.Ticks {
				t.Errorf("identity = (%d, %s, %d), want (%d, %s, %d)",
					got.Episode, got.Agent, got.Ticks, tt.want.Episode, tt.want.Agent, tt.want.Ticks)
			}
			checks := []struct {
				field     string
				got, want float64
			}{
				{"total", got.Total, tt.want.Total},
				{"mean", got.Mean, tt.want.Mean},
				{"std", got.Std, tt.want.Std},
				{"median", got.Median, tt.want.Median},
				{"min", got.Min, tt.want.Min},
				{"max", got.Max, tt.want.Max},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	tr.Begin(1)
	tr.Record(map[state.AgentID]float64{"b": 1, "a": 0.5})
	tr.Record(map[state.AgentID]float64{"b": 3, "a": 0.5})

	sums := tr.Summaries()
	if len(sums) != 2 {
		t.Fatalf("got %d summaries, want 2", len(sums))
	}
	if sums[0].Agent != "a" || sums[1].Agent != "b" {
		t.Errorf("summaries not sorted: %s, %s", sums[0].Agent, sums[1].Agent)
	}
	if sums[1].Total != 4 || sums[1].Ticks != 2 || sums[1].Episode != 1 {
		t.Errorf("b summary = %+v", sums[1])
	}

	tr.Begin(2)
	if tr.Episode() != 2 {
		t.Errorf("episode = %d, want 2", tr.Episode())
	}
	if len(tr.Summaries()) != 0 {
		t.Error("Begin should discard previous episode")
	}
}

func TestAgentSummaryLogValue(t *testing.T) {
	v := AgentSummary{Episode: 1, Agent: "a", Ticks: 2}.LogValue()
	attrs := v.Group()
	if len(attrs) != 9 {
		t.Fatalf("got %d attrs, want 9", len(attrs))
	}
	if attrs[1].Key != "agent" || attrs[1].Value.String() != "a" {
		t.Errorf("agent attr = %v", attrs[1])
	}
}
