package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TeamConfig describes the roles fielded by one side in an experiment.
type TeamConfig struct {
	ID     int
	First  string
	Second string
}

type GameRecord struct {
	ID   int
	Red  int // TeamConfig.ID
	Blue int // TeamConfig.ID
	Seed uint64
	GameMetric
}

type DecisionRecord struct {
	Game int // GameRecord.ID
	DecisionMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteTeamConfigs(configs []TeamConfig) error {
	header := []string{"id", "first", "second"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.First,
			config.Second,
		})
	}
	return w.write("team_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "layout", "red", "blue", "seed", "winner", "forfeit", "score", "turns", "overruns", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Layout,
			strconv.Itoa(record.Red),
			strconv.Itoa(record.Blue),
			strconv.FormatUint(record.Seed, 10),
			record.Winner,
			strconv.FormatBool(record.Forfeit),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Overruns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteDecisionRecords(records []DecisionRecord) error {
	header := []string{"game", "turn", "agent", "role", "mode", "action", "candidates", "endgame", "duration", "overrun"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Agent),
			record.Role,
			record.Mode,
			record.Action,
			strconv.Itoa(record.Candidates),
			strconv.FormatBool(record.Endgame),
			record.Duration.String(),
			strconv.FormatBool(record.Overrun),
		})
	}
	return w.write("decision_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
