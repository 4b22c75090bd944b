package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 800 {
		t.Errorf("expected width 800, got %d", got)
	}
	if got := cfg.GetWindowHeight(); got != 600 {
		t.Errorf("expected height 600, got %d", got)
	}
	if got := cfg.GetTPS(); got != 60 {
		t.Errorf("expected 60 tps, got %d", got)
	}
	if got := cfg.GetBackend(); got != BackendWindow {
		t.Errorf("expected backend %q, got %q", BackendWindow, got)
	}
	if got := cfg.GetSeed(); got != 0 {
		t.Errorf("expected no seed, got %d", got)
	}
	if _, ok := cfg.GetTuningFloat("laser_speed"); ok {
		t.Error("tuning should be unset without a config file")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetWindowTitle(); got != "Asteroids" {
		t.Errorf("expected title from file, got %q", got)
	}
	if got, ok := cfg.GetTuningFloat("laser_speed"); !ok || got != 0.075 {
		t.Errorf("expected laser speed 0.075, got %v (set: %v)", got, ok)
	}
	if got, ok := cfg.GetTuningDuration("fire_cooldown"); !ok || got != 350*time.Millisecond {
		t.Errorf("expected 350ms cooldown, got %v (set: %v)", got, ok)
	}
	if got, ok := cfg.GetTuningInt("max_parent_asteroids"); !ok || got != 7 {
		t.Errorf("expected 7 parents, got %v (set: %v)", got, ok)
	}
	if _, ok := cfg.GetTuningFloat("acceleration"); ok {
		t.Error("acceleration is not in the file and should be unset")
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SOUND_ENABLED", "false")
	t.Setenv("TUNING_LASER_SPEED", "0.2")
	t.Setenv("TUNING_ACCELERATION", "0.001")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 1024 {
		t.Errorf("expected width 1024, got %d", got)
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("expected log level warn, got %q", got)
	}
	if cfg.GetSoundEnabled() {
		t.Error("expected sound disabled by env")
	}
	if got, _ := cfg.GetTuningFloat("laser_speed"); got != 0.2 {
		t.Errorf("expected laser speed 0.2, got %v", got)
	}
	if got, ok := cfg.GetTuningFloat("acceleration"); !ok || got != 0.001 {
		t.Errorf("expected acceleration 0.001, got %v (set: %v)", got, ok)
	}
}

func TestEnvSelectsConfigFile(t *testing.T) {
	t.Setenv("ENV", "local")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := cfg.GetTuningInt("max_lasers"); !ok || got != 64 {
		t.Errorf("expected the local file to be loaded, got %v (set: %v)", got, ok)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GAME_BACKEND", "terminal")
	t.Setenv("GAME_SEED", "5")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "", "")
	flags.Uint64("seed", 0, "")
	if err := flags.Parse([]string{"--backend=headless"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.BindFlags(flags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetBackend(); got != BackendHeadless {
		t.Errorf("expected flag to win, got %q", got)
	}
	// --seed was not passed, so the env var still applies
	if got := cfg.GetSeed(); got != 5 {
		t.Errorf("expected seed 5 from env, got %d", got)
	}
}

func TestUnsetFlagFallsBackToFile(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "", "")
	if err := flags.Parse(nil); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.BindFlags(flags); err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetBackend(); got != BackendWindow {
		t.Errorf("expected backend from file, got %q", got)
	}
}
