// Package replay loads recorded game frames and groups them into ticks.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carball/state"
)

// ErrBadTeam is returned for a frame whose team column is not blue or orange.
var ErrBadTeam = errors.New("unknown team")

// Frame is one recorded row: one car and the ball at a tick.
type Frame struct {
	Tick     int    `csv:"tick"`
	Episode  int    `csv:"episode"`
	Agent    string `csv:"agent"`
	Team     string `csv:"team"`
	OnGround bool   `csv:"on_ground"`

	CarX  float64 `csv:"car_x"`
	CarY  float64 `csv:"car_y"`
	CarZ  float64 `csv:"car_z"`
	CarVX float64 `csv:"car_vx"`
	CarVY float64 `csv:"car_vy"`
	CarVZ float64 `csv:"car_vz"`

	BallX  float64 `csv:"ball_x"`
	BallY  float64 `csv:"ball_y"`
	BallZ  float64 `csv:"ball_z"`
	BallVX float64 `csv:"ball_vx"`
	BallVY float64 `csv:"ball_vy"`
	BallVZ float64 `csv:"ball_vz"`
}

// Car converts the car columns to a state.Car.
func (f *Frame) Car() (state.Car, error) {
	var team state.Team
	switch f.Team {
	case "blue", "0":
		team = state.TeamBlue
	case "orange", "1":
		team = state.TeamOrange
	default:
		return state.Car{}, fmt.Errorf("%w %q", ErrBadTeam, f.Team)
	}
	return state.Car{
		Team:     team,
		OnGround: f.OnGround,
		Physics: state.PhysicsObject{
			Position:       r3.Vec{X: f.CarX, Y: f.CarY, Z: f.CarZ},
			LinearVelocity: r3.Vec{X: f.CarVX, Y: f.CarVY, Z: f.CarVZ},
		},
	}, nil
}

// Ball converts the ball columns to a state.PhysicsObject.
func (f *Frame) Ball() state.PhysicsObject {
	return state.PhysicsObject{
		Position:       r3.Vec{X: f.BallX, Y: f.BallY, Z: f.BallZ},
		LinearVelocity: r3.Vec{X: f.BallVX, Y: f.BallVY, Z: f.BallVZ},
	}
}

// Read parses frames from CSV and validates their team columns.
func Read(r io.Reader) ([]Frame, error) {
	var frames []Frame
	if err := gocsv.Unmarshal(r, &frames); err != nil {
		return nil, fmt.Errorf("parsing frames: %w", err)
	}
	for i := range frames {
		if _, err := frames[i].Car(); err != nil {
			// +2: header line and 1-based rows
			return nil, fmt.Errorf("frame row %d: %w", i+2, err)
		}
	}
	return frames, nil
}

// Load reads frames from a CSV file.
func Load(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frames: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// TickGroup is the consecutive frames sharing an episode and tick.
type TickGroup struct {
	Episode int
	Tick    int
	Frames  []Frame
}

// Group splits frames into runs of equal (episode, tick). Input order is kept.
func Group(frames []Frame) []TickGroup {
	var groups []TickGroup
	for i := 0; i < len(frames); {
		j := i + 1
		for j < len(frames) && frames[j].Episode == frames[i].Episode && frames[j].Tick == frames[i].Tick {
			j++
		}
		groups = append(groups, TickGroup{
			Episode: frames[i].Episode,
			Tick:    frames[i].Tick,
			Frames:  frames[i:j],
		})
		i = j
	}
	return groups
}
