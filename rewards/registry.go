package rewards

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/carball/config"
)

// Term names accepted in config.
const (
	NameSpeedTowardBall    = "speed_toward_ball"
	NameInAir              = "in_air"
	NameVelocityBallToGoal = "velocity_ball_to_goal"
)

var (
	ErrUnknownReward = errors.New("unknown reward term")
	ErrInvalidWeight = errors.New("reward weight must be finite")
)

// New returns the named reward term configured from cfg.
func New(name string, cfg *config.Config) (RewardFunction, error) {
	switch name {
	case NameSpeedTowardBall:
		return &SpeedTowardBall{CarMaxSpeed: cfg.Arena.CarMaxSpeed}, nil
	case NameInAir:
		return &InAir{Scale: cfg.Rewards.InAirScale}, nil
	case NameVelocityBallToGoal:
		return &VelocityBallToGoal{
			BallMaxSpeed: cfg.Arena.BallMaxSpeed,
			BackNetY:     cfg.Arena.BackNetY,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReward, name)
}

// Build creates the Combined reward described by cfg.Rewards.Terms.
func Build(cfg *config.Config) (*Combined, error) {
	terms := make([]Term, 0, len(cfg.Rewards.Terms))
	for i, tc := range cfg.Rewards.Terms {
		if math.IsNaN(tc.Weight) || math.IsInf(tc.Weight, 0) {
			return nil, fmt.Errorf("term %d (%s): %w", i, tc.Name, ErrInvalidWeight)
		}
		fn, err := New(tc.Name, cfg)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		terms = append(terms, Term{Name: tc.Name, Fn: fn, Weight: tc.Weight})
	}
	return NewCombined(terms...), nil
}
