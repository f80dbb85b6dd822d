package game

import (
	"log/slog"

	"github.com/pthm-cable/carball/replay"
	"github.com/pthm-cable/carball/rewards"
	"github.com/pthm-cable/carball/state"
	"github.com/pthm-cable/carball/telemetry"
)

// flushEpisode emits per-agent summaries for the episode being tracked.
func (g *Game) flushEpisode() {
	summaries := g.tracker.Summaries()

	if g.statsCallback != nil {
		for _, s := range summaries {
			g.statsCallback(s)
		}
	}

	if g.logStats {
		for _, s := range summaries {
			slog.Info("episode summary", "summary", s)
		}
	}

	if err := g.outputManager.WriteSummaries(summaries); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

// writeTick writes one rewards.csv row per agent.
func (g *Game) writeTick(group replay.TickGroup, agents []state.AgentID, s *state.GameState, rw map[state.AgentID]float64) {
	parts := g.reward.Breakdown(agents, s, nil, nil, g.shared)

	records := make([]telemetry.RewardRecord, 0, len(agents))
	for _, agent := range agents {
		records = append(records, telemetry.RewardRecord{
			Episode:            group.Episode,
			Tick:               group.Tick,
			Agent:              string(agent),
			Reward:             rw[agent],
			SpeedTowardBall:    parts[rewards.NameSpeedTowardBall][agent],
			InAir:              parts[rewards.NameInAir][agent],
			VelocityBallToGoal: parts[rewards.NameVelocityBallToGoal][agent],
		})
	}

	if err := g.outputManager.WriteRewards(records); err != nil {
		slog.Error("failed to write rewards", "error", err)
	}
}
