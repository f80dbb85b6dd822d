// Package telemetry accumulates reward statistics and writes experiment output.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/carball/config"
)

// RewardRecord is one row of rewards.csv: the combined reward for one agent
// at one tick, plus each known term's unweighted value.
type RewardRecord struct {
	Episode            int     `csv:"episode"`
	Tick               int     `csv:"tick"`
	Agent              string  `csv:"agent"`
	Reward             float64 `csv:"reward"`
	SpeedTowardBall    float64 `csv:"speed_toward_ball"`
	InAir              float64 `csv:"in_air"`
	VelocityBallToGoal float64 `csv:"velocity_ball_to_goal"`
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir         string
	rewardsFile *os.File
	summaryFile *os.File

	// Track if headers have been written
	rewardsHeaderWritten bool
	summaryHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "rewards.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rewards.csv: %w", err)
	}
	om.rewardsFile = f

	f, err = os.Create(filepath.Join(dir, "summary.csv"))
	if err != nil {
		om.rewardsFile.Close()
		return nil, fmt.Errorf("creating summary.csv: %w", err)
	}
	om.summaryFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRewards appends per-tick reward rows to rewards.csv.
func (om *OutputManager) WriteRewards(records []RewardRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.rewardsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.rewardsFile); err != nil {
			return fmt.Errorf("writing rewards: %w", err)
		}
		om.rewardsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.rewardsFile); err != nil {
			return fmt.Errorf("writing rewards: %w", err)
		}
	}
	return nil
}

// WriteSummaries appends episode summaries to summary.csv.
func (om *OutputManager) WriteSummaries(summaries []AgentSummary) error {
	if om == nil || len(summaries) == 0 {
		return nil
	}

	if !om.summaryHeaderWritten {
		if err := gocsv.Marshal(summaries, om.summaryFile); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		om.summaryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(summaries, om.summaryFile); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.rewardsFile != nil {
		if err := om.rewardsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.summaryFile != nil {
		if err := om.summaryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
