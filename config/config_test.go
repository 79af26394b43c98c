package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "tinyCapture", cfg.LayoutName())

	l, err := cfg.LoadLayout()
	require.NoError(t, err)
	require.Equal(t, 4, l.NumAgents())
}

func TestParse(t *testing.T) {
	t.Run("overriding defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
layout: mediumCapture
red:
  first: priority
  second: defense
seed: 7
rules:
  max_turns: 300
  speed: 0.5
turn_budget: 250ms
log_level: debug
`))
		require.NoError(t, err)
		require.Equal(t, "mediumCapture", cfg.Layout)
		require.Equal(t, TeamConfig{First: "priority", Second: "defense"}, cfg.Red)
		require.Equal(t, Default().Blue, cfg.Blue, "Unset sections keep their defaults")
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, 250*time.Millisecond, cfg.TurnBudget)
		require.Equal(t, zerolog.DebugLevel, cfg.Level())

		rules := cfg.GameRules()
		require.Equal(t, 300, rules.MaxTurns())
		require.Equal(t, 0.5, rules.Speed(0))
		require.Equal(t, Default().Rules.ScaredTime, rules.ScaredTime())
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		cases := map[string]string{
			"unknown role":   "red: {first: goalie}",
			"no turns":       "rules: {max_turns: 0}",
			"too fast":       "rules: {speed: 2}",
			"no budget":      "turn_budget: 0s",
			"no games":       "games: 0",
			"bad log level":  "log_level: loud",
			"no layout":      "layout: \"\"",
			"malformed yaml": "red: [",
		}
		for name, text := range cases {
			_, err := Parse([]byte(text))
			require.Error(t, err, name)
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("reading a file", func(t *testing.T) {
		path := filepath.Join(dir, "match.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: 3\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Games)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("custom layout file", func(t *testing.T) {
		path := filepath.Join(dir, "corridor.lay")
		require.NoError(t, os.WriteFile(path, []byte("%%%%%%%%\n%13  24%\n%%%%%%%%\n"), 0644))

		cfg := Default()
		cfg.LayoutFile = path
		l, err := cfg.LoadLayout()
		require.NoError(t, err)
		require.Equal(t, 8, l.Width)
		require.Equal(t, path, cfg.LayoutName())
	})

	t.Run("broken layout file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.lay")
		require.NoError(t, os.WriteFile(path, []byte("%%%\n%1%\n"), 0644))

		cfg := Default()
		cfg.LayoutFile = path
		_, err := cfg.LoadLayout()
		require.Error(t, err)
	})
}
