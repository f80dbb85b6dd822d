package rewards

import (
	"github.com/pthm-cable/carball/common"
	"github.com/pthm-cable/carball/state"
)

// InAir pays a flat Scale for every tick a car is off the ground.
type InAir struct {
	Scale float64
}

// NewInAir returns the term with the default scale.
func NewInAir() *InAir {
	return &InAir{Scale: common.InAirScale}
}

// Reset is a no-op.
func (r *InAir) Reset(agents []state.AgentID, initial *state.GameState, shared SharedInfo) {}

// GetRewards implements RewardFunction.
func (r *InAir) GetRewards(agents []state.AgentID, s *state.GameState, isTerminated, isTruncated map[state.AgentID]bool, shared SharedInfo) map[state.AgentID]float64 {
	rewards := make(map[state.AgentID]float64, len(agents))
	for _, agent := range agents {
		if s.Cars[agent].OnGround {
			rewards[agent] = 0
		} else {
			rewards[agent] = r.Scale
		}
	}
	return rewards
}
