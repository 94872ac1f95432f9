package training

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/zeu5/rl-agents/util"
)

type Config struct {
	Episodes     int     `koanf:"episodes" json:"episodes"`
	Horizon      int     `koanf:"horizon" json:"horizon"`
	WarmupSteps  int     `koanf:"warmup_steps" json:"warmup_steps"`
	LearningRate float64 `koanf:"learning_rate" json:"learning_rate"`
	Discount     float64 `koanf:"discount" json:"discount"`
	Epsilon      float64 `koanf:"epsilon" json:"epsilon"`
	Seed         uint64  `koanf:"seed" json:"seed"`
	SavePath     string  `koanf:"save_path" json:"save_path"`

	Log LogConfig `koanf:"log" json:"log"`
}

type LogConfig struct {
	Level  string `koanf:"level" json:"level"`
	Format string `koanf:"format" json:"format"` // json, console
}

func DefaultConfig() *Config {
	return &Config{
		Episodes:     1000,
		Horizon:      100,
		WarmupSteps:  0,
		LearningRate: 0.1,
		Discount:     0.99,
		Epsilon:      0.1,
		Seed:         1,
		SavePath:     "results",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig layers the optional YAML file at path and RLAGENTS_-prefixed
// environment variables (RLAGENTS_LOG_LEVEL -> log.level) over the defaults.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Nesting uses a double underscore: RLAGENTS_LOG__LEVEL -> log.level,
	// RLAGENTS_WARMUP_STEPS -> warmup_steps.
	if err := k.Load(env.Provider("RLAGENTS_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "RLAGENTS_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Record saves the resolved config next to the run's other artifacts.
func (c *Config) Record(path string) error {
	return util.SaveJson(path, c)
}
