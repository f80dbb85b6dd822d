// Package arena keeps the live set of cars and the ball in an ECS world and
// produces read-only GameState snapshots from it.
package arena

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/carball/components"
	"github.com/pthm-cable/carball/state"
)

// Arena holds the current car entities and ball state.
type Arena struct {
	world *ecs.World

	carMapper *ecs.Map3[components.Position, components.Velocity, components.Car]
	carFilter *ecs.Filter3[components.Position, components.Velocity, components.Car]

	entities map[state.AgentID]ecs.Entity
	ball     state.PhysicsObject
	tick     int
}

// New creates an empty arena.
func New() *Arena {
	world := ecs.NewWorld()
	return &Arena{
		world:     world,
		carMapper: ecs.NewMap3[components.Position, components.Velocity, components.Car](world),
		carFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Car](world),
		entities:  make(map[state.AgentID]ecs.Entity),
	}
}

// Tick returns the tick of the most recent update.
func (a *Arena) Tick() int {
	return a.tick
}

// CarCount returns the number of cars in the arena.
func (a *Arena) CarCount() int {
	return len(a.entities)
}

// SetTick advances the arena clock.
func (a *Arena) SetTick(tick int) {
	a.tick = tick
}

// SetBall replaces the ball state.
func (a *Arena) SetBall(ball state.PhysicsObject) {
	a.ball = ball
}

// UpsertCar creates or updates the entity for id at the current tick.
func (a *Arena) UpsertCar(id state.AgentID, car state.Car) {
	pos, vel, c := components.FromState(id, car, a.tick)

	if e, ok := a.entities[id]; ok && a.world.Alive(e) {
		p, v, cc := a.carMapper.Get(e)
		*p, *v, *cc = pos, vel, c
		return
	}
	a.entities[id] = a.carMapper.NewEntity(&pos, &vel, &c)
}

// RemoveCar drops a car from the arena. Unknown ids are ignored.
func (a *Arena) RemoveCar(id state.AgentID) {
	e, ok := a.entities[id]
	if !ok {
		return
	}
	delete(a.entities, id)
	if a.world.Alive(e) {
		a.world.RemoveEntity(e)
	}
}

// Prune removes cars not updated at the current tick and returns their ids.
func (a *Arena) Prune() []state.AgentID {
	var stale []state.AgentID

	// First pass: collect (world is locked during query iteration)
	query := a.carFilter.Query()
	for query.Next() {
		_, _, car := query.Get()
		if car.LastSeen != a.tick {
			stale = append(stale, car.Agent)
		}
	}

	// Second pass: remove
	for _, id := range stale {
		a.RemoveCar(id)
	}
	return stale
}

// Clear removes every car and zeroes the ball.
func (a *Arena) Clear() {
	for id := range a.entities {
		a.RemoveCar(id)
	}
	a.ball = state.PhysicsObject{}
}

// Snapshot returns an independent GameState for the current tick.
func (a *Arena) Snapshot() *state.GameState {
	cars := make(map[state.AgentID]state.Car, len(a.entities))

	query := a.carFilter.Query()
	for query.Next() {
		pos, vel, car := query.Get()
		cars[car.Agent] = components.ToState(pos, vel, car)
	}

	return &state.GameState{
		Tick: a.tick,
		Cars: cars,
		Ball: a.ball,
	}
}
