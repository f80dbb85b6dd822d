// Package state defines the read-only game state snapshot rewards are computed from.
package state

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// AgentID identifies one controlled car.
type AgentID string

// Team is the side a car plays for.
type Team uint8

const (
	TeamBlue   Team = iota // Attacks the +Y goal
	TeamOrange             // Attacks the -Y goal
)

// String returns the lowercase team name.
func (t Team) String() string {
	if t == TeamOrange {
		return "orange"
	}
	return "blue"
}

// PhysicsObject is the kinematic state of a car or the ball.
type PhysicsObject struct {
	Position       r3.Vec
	LinearVelocity r3.Vec
}

// Car is the per-agent state.
type Car struct {
	Team     Team
	OnGround bool
	Physics  PhysicsObject
}

// IsOrange reports whether the car is on the orange team.
func (c Car) IsOrange() bool {
	return c.Team == TeamOrange
}

// GameState is the snapshot for one tick. It is shared read-only across
// every reward computation for that tick.
type GameState struct {
	Tick int
	Cars map[AgentID]Car
	Ball PhysicsObject
}

// Agents returns the IDs of all cars in sorted order.
func (s *GameState) Agents() []AgentID {
	agents := make([]AgentID, 0, len(s.Cars))
	for id := range s.Cars {
		agents = append(agents, id)
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i] < agents[j] })
	return agents
}
