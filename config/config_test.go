package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Arena.CarMaxSpeed != 2300 {
		t.Errorf("car_max_speed = %v, want 2300", cfg.Arena.CarMaxSpeed)
	}
	if cfg.Arena.BallMaxSpeed != 6000 {
		t.Errorf("ball_max_speed = %v, want 6000", cfg.Arena.BallMaxSpeed)
	}
	if cfg.Arena.BackNetY != 6000 {
		t.Errorf("back_net_y = %v, want 6000", cfg.Arena.BackNetY)
	}
	if cfg.Rewards.InAirScale != 0.02 {
		t.Errorf("in_air_scale = %v, want 0.02", cfg.Rewards.InAirScale)
	}
	if len(cfg.Rewards.Terms) != 3 {
		t.Errorf("got %d default terms, want 3", len(cfg.Rewards.Terms))
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlay(t *testing.T) {
	path := writeFile(t, `
arena:
  car_max_speed: 100
rewards:
  terms:
    - name: in_air
      weight: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Arena.CarMaxSpeed != 100 {
		t.Errorf("car_max_speed = %v, want 100", cfg.Arena.CarMaxSpeed)
	}
	// Untouched fields keep their defaults
	if cfg.Arena.BallMaxSpeed != 6000 {
		t.Errorf("ball_max_speed = %v, want 6000", cfg.Arena.BallMaxSpeed)
	}
	if len(cfg.Rewards.Terms) != 1 || cfg.Rewards.Terms[0].Name != "in_air" {
		t.Errorf("terms = %+v, want single in_air term", cfg.Rewards.Terms)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero car speed", "arena:\n  car_max_speed: 0\n"},
		{"negative ball speed", "arena:\n  ball_max_speed: -1\n"},
		{"unnamed term", "rewards:\n  terms:\n    - weight: 1\n"},
		{"nan car speed", "arena:\n  car_max_speed: .nan\n"},
		{"nan ball speed", "arena:\n  ball_max_speed: .nan\n"},
		{"infinite car speed", "arena:\n  car_max_speed: .inf\n"},
		{"nan back net", "arena:\n  back_net_y: .nan\n"},
		{"infinite back net", "arena:\n  back_net_y: -.inf\n"},
		{"nan in air scale", "rewards:\n  in_air_scale: .nan\n"},
		{"duplicate term", "rewards:\n  terms:\n    - name: in_air\n      weight: 1\n    - name: in_air\n      weight: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Arena.BackNetY = 5120

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Arena.BackNetY != 5120 {
		t.Errorf("back_net_y = %v, want 5120", loaded.Arena.BackNetY)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() before Init() should panic")
		}
	}()
	Cfg()
}

func TestMustInit(t *testing.T) {
	saved := global
	defer func() { global = saved }()

	MustInit("")
	if Cfg().Arena.BallMaxSpeed != 6000 {
		t.Errorf("Cfg().Arena.BallMaxSpeed = %v, want 6000", Cfg().Arena.BallMaxSpeed)
	}
}

func TestMustInitPanicsOnMissingFile(t *testing.T) {
	saved := global
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("MustInit with a missing file should panic")
		}
	}()
	MustInit(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestInit(t *testing.T) {
	saved := global
	defer func() { global = saved }()

	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if Cfg().Arena.CarMaxSpeed != 2300 {
		t.Errorf("Cfg().Arena.CarMaxSpeed = %v, want 2300", Cfg().Arena.CarMaxSpeed)
	}
}
