package rewards

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carball/common"
	"github.com/pthm-cable/carball/state"
)

// VelocityBallToGoal rewards ball velocity toward the goal the agent attacks.
// It depends only on the ball and the agent's team, so teammates always
// receive the same value.
type VelocityBallToGoal struct {
	BallMaxSpeed float64
	BackNetY     float64
}

// NewVelocityBallToGoal returns the term with arena defaults.
func NewVelocityBallToGoal() *VelocityBallToGoal {
	return &VelocityBallToGoal{
		BallMaxSpeed: common.BallMaxSpeed,
		BackNetY:     common.BackNetY,
	}
}

// Reset is a no-op.
func (r *VelocityBallToGoal) Reset(agents []state.AgentID, initial *state.GameState, shared SharedInfo) {
}

// GetRewards implements RewardFunction.
func (r *VelocityBallToGoal) GetRewards(agents []state.AgentID, s *state.GameState, isTerminated, isTruncated map[state.AgentID]bool, shared SharedInfo) map[state.AgentID]float64 {
	rewards := make(map[state.AgentID]float64, len(agents))
	for _, agent := range agents {
		goal := r.TargetGoal(s.Cars[agent].Team)
		rewards[agent] = speedToward(s.Ball.Position, goal, s.Ball.LinearVelocity, r.BallMaxSpeed)
	}
	return rewards
}

// TargetGoal returns the center of the back of the net the team scores into.
func (r *VelocityBallToGoal) TargetGoal(team state.Team) r3.Vec {
	y := r.BackNetY
	if team == state.TeamOrange {
		y = -y
	}
	return r3.Vec{X: 0, Y: y, Z: 0}
}
