package rewards

import "github.com/pthm-cable/carball/state"

// Term pairs a reward function with its weight in a Combined reward.
type Term struct {
	Name   string
	Fn     RewardFunction
	Weight float64
}

// Combined sums weighted reward terms per agent.
type Combined struct {
	terms []Term
}

// NewCombined creates a weighted sum over terms.
func NewCombined(terms ...Term) *Combined {
	return &Combined{terms: terms}
}

// Terms returns the configured terms.
func (c *Combined) Terms() []Term {
	return c.terms
}

// Reset forwards to every term.
func (c *Combined) Reset(agents []state.AgentID, initial *state.GameState, shared SharedInfo) {
	for _, t := range c.terms {
		t.Fn.Reset(agents, initial, shared)
	}
}

// GetRewards implements RewardFunction.
func (c *Combined) GetRewards(agents []state.AgentID, s *state.GameState, isTerminated, isTruncated map[state.AgentID]bool, shared SharedInfo) map[state.AgentID]float64 {
	total := make(map[state.AgentID]float64, len(agents))
	for _, agent := range agents {
		total[agent] = 0
	}
	for _, t := range c.terms {
		rewards := t.Fn.GetRewards(agents, s, isTerminated, isTruncated, shared)
		for _, agent := range agents {
			total[agent] += t.Weight * rewards[agent]
		}
	}
	return total
}

// Breakdown returns each term's unweighted rewards, keyed by term name.
func (c *Combined) Breakdown(agents []state.AgentID, s *state.GameState, isTerminated, isTruncated map[state.AgentID]bool, shared SharedInfo) map[string]map[state.AgentID]float64 {
	out := make(map[string]map[state.AgentID]float64, len(c.terms))
	for _, t := range c.terms {
		out[t.Name] = t.Fn.GetRewards(agents, s, isTerminated, isTruncated, shared)
	}
	return out
}
