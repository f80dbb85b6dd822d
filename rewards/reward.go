// Package rewards implements per-agent reward shaping terms for car agents.
//
// Every term is a pure function of the current GameState: nothing is
// carried between calls, so Reset is a no-op and agents may be evaluated
// in any order.
package rewards

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carball/common"
	"github.com/pthm-cable/carball/state"
)

// SharedInfo is scratch data the training loop passes to every reward term.
type SharedInfo map[string]any

// RewardFunction is the contract the training loop calls each episode and tick.
type RewardFunction interface {
	// Reset is called at episode start.
	Reset(agents []state.AgentID, initial *state.GameState, shared SharedInfo)

	// GetRewards returns exactly one finite reward per requested agent.
	GetRewards(agents []state.AgentID, s *state.GameState, isTerminated, isTruncated map[state.AgentID]bool, shared SharedInfo) map[state.AgentID]float64
}

// speedToward returns the component of vel along from->to, divided by
// maxSpeed and floored at zero. Degenerate separations score zero.
func speedToward(from, to, vel r3.Vec, maxSpeed float64) float64 {
	diff := r3.Sub(to, from)
	dist := r3.Norm(diff)
	if dist < common.DistanceEpsilon {
		return 0
	}
	// Divide per component; scaling by 1/dist misses 1.0 for some distances
	dir := r3.Vec{X: diff.X / dist, Y: diff.Y / dist, Z: diff.Z / dist}
	return max(r3.Dot(vel, dir)/maxSpeed, 0)
}
