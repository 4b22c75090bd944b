package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Asteroids")
	v.SetDefault("window.tps", 60)
	v.SetDefault("game.backend", BackendWindow)
	v.SetDefault("log.level", "debug")
	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.volume", 0.5)
	v.SetDefault("terminal.key_hold_ticks", 6)
}

// BindFlags makes command line flags take precedence over env vars and the
// config file. Only flags set explicitly on the command line count.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"backend": "GAME_BACKEND",
		"seed":    "GAME_SEED",
	}
	for flag, key := range bindings {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := c.config.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

// GetTPS is the number of simulation ticks per second
func (c *Config) GetTPS() int {
	tps := c.config.GetInt("WINDOW_TPS")
	if tps <= 0 {
		tps = c.config.GetInt("window.tps")
	}

	return tps
}

func (c *Config) GetBackend() string {
	backend := c.config.GetString("GAME_BACKEND")
	if len(backend) == 0 {
		backend = c.config.GetString("game.backend")
	}

	return strings.ToLower(backend)
}

// GetSeed returns 0 when no seed is configured
func (c *Config) GetSeed() uint64 {
	seed := c.config.GetUint64("GAME_SEED")
	if seed == 0 {
		seed = c.config.GetUint64("game.seed")
	}

	return seed
}

func (c *Config) GetLogLevel() string {
	level := c.config.GetString("LOG_LEVEL")
	if len(level) == 0 {
		level = c.config.GetString("log.level")
	}

	return level
}

func (c *Config) GetSoundEnabled() bool {
	if c.config.IsSet("SOUND_ENABLED") {
		return c.config.GetBool("SOUND_ENABLED")
	}

	return c.config.GetBool("sound.enabled")
}

func (c *Config) GetSoundVolume() float64 {
	if c.config.IsSet("SOUND_VOLUME") {
		return c.config.GetFloat64("SOUND_VOLUME")
	}

	return c.config.GetFloat64("sound.volume")
}

// GetKeyHoldTicks is how long a terminal key press counts as held
func (c *Config) GetKeyHoldTicks() int {
	ticks := c.config.GetInt("TERMINAL_KEY_HOLD_TICKS")
	if ticks == 0 {
		ticks = c.config.GetInt("terminal.key_hold_ticks")
	}

	return ticks
}

// GetTuningFloat reads tuning.<name>. ok is false when the value is not set
// anywhere, so the caller keeps its default.
func (c *Config) GetTuningFloat(name string) (value float64, ok bool) {
	key := c.tuningKey(name)
	if key == "" {
		return 0, false
	}

	return c.config.GetFloat64(key), true
}

func (c *Config) GetTuningInt(name string) (value int, ok bool) {
	key := c.tuningKey(name)
	if key == "" {
		return 0, false
	}

	return c.config.GetInt(key), true
}

// GetTuningDuration accepts Go duration strings such as "350ms"
func (c *Config) GetTuningDuration(name string) (value time.Duration, ok bool) {
	key := c.tuningKey(name)
	if key == "" {
		return 0, false
	}

	return c.config.GetDuration(key), true
}

// tuningKey returns whichever of the env key and the yaml key is set, env
// first, or "" if neither is
func (c *Config) tuningKey(name string) string {
	yamlKey := "tuning." + name
	if envKey := envKeyFor(yamlKey); c.config.IsSet(envKey) {
		return envKey
	}
	if c.config.IsSet(yamlKey) {
		return yamlKey
	}

	return ""
}

func envKeyFor(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
