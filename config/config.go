package config

import (
	"fmt"
	"os"
	"time"

	"capture/game"
	"capture/meta"
	"capture/searcher"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config describes a match or an experiment.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Layout is the name of a built-in layout. Ignored when LayoutFile is set.
	Layout     string `yaml:"layout"`
	LayoutFile string `yaml:"layout_file"`

	Red  TeamConfig `yaml:"red"`
	Blue TeamConfig `yaml:"blue"`

	// Seed pins tie-breaking; zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`

	Rules RulesConfig `yaml:"rules"`

	TurnBudget  time.Duration `yaml:"turn_budget"`
	MaxOverruns int           `yaml:"max_overruns"`

	Games     int    `yaml:"games"`
	OutputDir string `yaml:"output_dir"`
	LogLevel  string `yaml:"log_level"`
}

// TeamConfig names the roles of a team's two agents.
type TeamConfig struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

type RulesConfig struct {
	MaxTurns   int     `yaml:"max_turns"`
	ScaredTime int     `yaml:"scared_time"`
	SightRange int     `yaml:"sight_range"`
	Speed      float64 `yaml:"speed"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	rules := game.NewStandardRules()
	return Config{
		Layout: "tinyCapture",
		Red:    TeamConfig{First: "stall", Second: "stall"},
		Blue:   TeamConfig{First: "stall", Second: "defense"},
		Rules: RulesConfig{
			MaxTurns:   meta.MAX_TURNS,
			ScaredTime: rules.Scared,
			SightRange: rules.Sight,
			Speed:      rules.AgentRate,
		},
		TurnBudget:  meta.TURN_BUDGET,
		MaxOverruns: meta.MAX_OVERRUNS,
		Games:       meta.GAMES,
		OutputDir:   "experiments",
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, role := range []string{c.Red.First, c.Red.Second, c.Blue.First, c.Blue.Second} {
		if _, err := searcher.ParseRole(role); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if c.Layout == "" && c.LayoutFile == "" {
		return fmt.Errorf("invalid config: no layout")
	}
	if c.Rules.MaxTurns <= 0 {
		return fmt.Errorf("invalid config: max_turns must be positive, got %d", c.Rules.MaxTurns)
	}
	if c.Rules.Speed <= 0 || c.Rules.Speed > 1 {
		return fmt.Errorf("invalid config: speed must be in (0, 1], got %g", c.Rules.Speed)
	}
	if c.TurnBudget <= 0 {
		return fmt.Errorf("invalid config: turn_budget must be positive, got %s", c.TurnBudget)
	}
	if c.Games <= 0 {
		return fmt.Errorf("invalid config: games must be positive, got %d", c.Games)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadLayout reads the configured layout file, or the built-in layout.
func (c Config) LoadLayout() (*game.Layout, error) {
	if c.LayoutFile == "" {
		return game.LoadLayout(c.Layout)
	}
	data, err := os.ReadFile(c.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := game.ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", c.LayoutFile, err)
	}
	return l, nil
}

// LayoutName is the label used in logs and records.
func (c Config) LayoutName() string {
	if c.LayoutFile != "" {
		return c.LayoutFile
	}
	return c.Layout
}

func (c Config) GameRules() *game.StandardRules {
	return &game.StandardRules{
		Scared:    c.Rules.ScaredTime,
		Sight:     c.Rules.SightRange,
		Turns:     c.Rules.MaxTurns,
		AgentRate: c.Rules.Speed,
	}
}

// Level returns the configured log level, info when unparsable.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
