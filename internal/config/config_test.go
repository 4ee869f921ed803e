package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Content: ContentConfig{
			ItemsDir:    "content/items",
			MonstersDir: "content/monsters",
		},
		Simulation: SimulationConfig{
			Mode:             "stochastic",
			Workers:          4,
			Trials:           1000,
			Utility1Quantity: 100,
			Utility2Quantity: 100,
			Timeout:          30 * time.Second,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  items_dir: /srv/items
  monsters_dir: /srv/monsters
simulation:
  mode: averaged
  workers: 2
  trials: 50
  seed: 42
  utility1_quantity: 10
  timeout: 5s
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "/srv/items", cfg.Content.ItemsDir)
	assert.Equal(t, "averaged", cfg.Simulation.Mode)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, 50, cfg.Simulation.Trials)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 10, cfg.Simulation.Utility1Quantity)
	assert.Equal(t, 100, cfg.Simulation.Utility2Quantity)
	assert.Equal(t, 5*time.Second, cfg.Simulation.Timeout)
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "stochastic", cfg.Simulation.Mode)
	assert.Equal(t, 1000, cfg.Simulation.Trials)
	assert.Equal(t, "content/items", cfg.Content.ItemsDir)
	assert.Equal(t, 30*time.Second, cfg.Simulation.Timeout)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FIGHTSIM_SIMULATION_TRIALS", "250")
	t.Setenv("FIGHTSIM_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Simulation.Trials)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("simulation.mode", "averaged")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "averaged", cfg.Simulation.Mode)

	v.Set("simulation.trials", 0)
	_, err = LoadFromViper(v)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateContentDirs(t *testing.T) {
	cfg := validConfig()
	cfg.Content = ContentConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.items_dir")
	assert.Contains(t, err.Error(), "content.monsters_dir")
}

func TestValidateSimulationMode(t *testing.T) {
	cfg := validConfig()
	cfg.Simulation.Mode = "random"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.mode")
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Output = ""
	cfg.Simulation.Workers = -1
	cfg.Simulation.Timeout = -time.Second
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.output")
	assert.Contains(t, err.Error(), "simulation.workers")
	assert.Contains(t, err.Error(), "simulation.timeout")
}

func TestPropertyValidTrials(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		trials := rapid.IntRange(1, 1_000_000).Draw(t, "trials")
		cfg := validConfig()
		cfg.Simulation.Trials = trials
		assert.NoError(t, cfg.Validate())
	})
}

func TestPropertyInvalidUtilityQuantity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := rapid.IntRange(-1000, -1).Draw(t, "quantity")
		cfg := validConfig()
		if rapid.Bool().Draw(t, "first") {
			cfg.Simulation.Utility1Quantity = q
		} else {
			cfg.Simulation.Utility2Quantity = q
		}
		assert.Error(t, cfg.Validate())
	})
}
