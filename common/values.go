// Package common holds arena constants shared by rewards and replay tooling.
package common

// Arena dimensions and speed limits, in unreal units.
const (
	CarMaxSpeed  = 2300.0 // Top speed of a supersonic car
	BallMaxSpeed = 6000.0 // Ball speed cap
	BackNetY     = 6000.0 // Y of the back of each net; blue attacks +Y
)

// Reward shaping tuning.
const (
	DistanceEpsilon = 1e-6 // Separations below this have no usable direction
	InAirScale      = 0.02 // Paid per airborne tick
)
