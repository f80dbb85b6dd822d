// Package components defines ECS components for cars held in the replay arena.
package components

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carball/state"
)

// Position represents a car's world position.
type Position struct {
	X, Y, Z float64
}

// Vec returns the position as a vector.
func (p Position) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Velocity represents a car's linear velocity.
type Velocity struct {
	X, Y, Z float64
}

// Vec returns the velocity as a vector.
func (v Velocity) Vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Car holds the non-kinematic state of one controlled car.
type Car struct {
	Agent    state.AgentID
	Team     state.Team
	OnGround bool
	LastSeen int // Tick of the last frame that mentioned this car
}

// FromState splits a state.Car into its components.
func FromState(id state.AgentID, c state.Car, tick int) (Position, Velocity, Car) {
	p, v := c.Physics.Position, c.Physics.LinearVelocity
	return Position{X: p.X, Y: p.Y, Z: p.Z},
		Velocity{X: v.X, Y: v.Y, Z: v.Z},
		Car{Agent: id, Team: c.Team, OnGround: c.OnGround, LastSeen: tick}
}

// ToState joins components back into a state.Car.
func ToState(pos *Position, vel *Velocity, car *Car) state.Car {
	return state.Car{
		Team:     car.Team,
		OnGround: car.OnGround,
		Physics: state.PhysicsObject{
			Position:       pos.Vec(),
			LinearVelocity: vel.Vec(),
		},
	}
}
