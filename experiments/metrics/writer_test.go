package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("tinyCapture")
	c.AddDecision(DecisionMetric{Turn: 0, Agent: 0, Overrun: true})
	c.AddDecision(DecisionMetric{Turn: 1, Agent: 1})

	game, decisions := c.Complete("red", false, 3, 2)
	require.Equal(t, "tinyCapture", game.Layout)
	require.Equal(t, "red", game.Winner)
	require.Equal(t, 3, game.Score)
	require.Equal(t, 1, game.Overruns)
	require.Len(t, decisions, 2)
	require.False(t, game.EndTime.Before(game.StartTime))

	c.Start("mediumCapture")
	_, decisions = c.Complete("tie", false, 0, 0)
	require.Empty(t, decisions, "Start should reset collected decisions")
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "matchup")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "matchup"), filepath.Dir(w.Dir()))

	t.Run("team configs", func(t *testing.T) {
		require.NoError(t, w.WriteTeamConfigs([]TeamConfig{
			{ID: 1, First: "stall", Second: "defense"},
		}))
		rows := readCSV(t, filepath.Join(w.Dir(), "team_configs.csv"))
		require.Equal(t, [][]string{{"id", "first", "second"}, {"1", "stall", "defense"}}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: 1, Red: 1, Blue: 2, Seed: 42,
			GameMetric: GameMetric{
				Layout: "tinyCapture", Winner: "blue", Score: -4, Turns: 120,
				StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			},
		}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "tinyCapture", "1", "2", "42", "blue", "false", "-4", "120", "0",
			"2024-01-01T12:00:00Z", "2024-01-01T12:00:01Z", "1s"}, rows[1])
	})

	t.Run("decision records", func(t *testing.T) {
		require.NoError(t, w.WriteDecisionRecords([]DecisionRecord{{
			Game: 1,
			DecisionMetric: DecisionMetric{
				Turn: 5, Agent: 1, Role: "defense", Mode: "defense", Action: "North",
				Candidates: 3, Duration: 2 * time.Millisecond,
			},
		}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "decision_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "5", "1", "defense", "defense", "North", "3", "false", "2ms", "false"}, rows[1])
	})
}
