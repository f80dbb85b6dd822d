package rewards

import (
	"github.com/pthm-cable/carball/common"
	"github.com/pthm-cable/carball/state"
)

// SpeedTowardBall rewards the part of each car's velocity that points at the ball.
// The result is floored at 0 and is 1 when driving straight at the ball at CarMaxSpeed.
type SpeedTowardBall struct {
	CarMaxSpeed float64
}

// NewSpeedTowardBall returns the term normalized by the arena's top car speed.
func NewSpeedTowardBall() *SpeedTowardBall {
	return &SpeedTowardBall{CarMaxSpeed: common.CarMaxSpeed}
}

// Reset is a no-op.
func (r *SpeedTowardBall) Reset(agents []state.AgentID, initial *state.GameState, shared SharedInfo) {
}

// GetRewards implements RewardFunction.
func (r *SpeedTowardBall) GetRewards(agents []state.AgentID, s *state.GameState, isTerminated, isTruncated map[state.AgentID]bool, shared SharedInfo) map[state.AgentID]float64 {
	rewards := make(map[state.AgentID]float64, len(agents))
	for _, agent := range agents {
		car := s.Cars[agent]
		rewards[agent] = speedToward(car.Physics.Position, s.Ball.Position, car.Physics.LinearVelocity, r.CarMaxSpeed)
	}
	return rewards
}
