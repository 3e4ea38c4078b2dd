package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// AgentConfig describes one engine taking part in an experiment.
type AgentConfig struct {
	ID          int     `yaml:"id"`
	Episodes    int     `yaml:"episodes"`
	Evaluator   string  `yaml:"evaluator"`
	Backup      string  `yaml:"backup"`
	Temperature float64 `yaml:"temperature"` // 0 plays the most valuable move, >0 samples by visits
	Seed        uint64  `yaml:"seed"`
}

type GameRecord struct {
	ID      int
	Matchup int
	White   int // AgentConfig.ID
	Black   int // AgentConfig.ID
	GameMetric
}

// WinnerID returns the id of the winning agent, or 0 for an unfinished game.
func (r GameRecord) WinnerID() int {
	switch r.Winner {
	case "W":
		return r.White
	case "B":
		return r.Black
	}
	return 0
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{{"id", "episodes", "evaluator", "backup", "temperature", "seed"}}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Episodes),
			config.Evaluator,
			config.Backup,
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return errors.Wrap(w.writeCSV("agent_configs.csv", rows), "agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{"id", "matchup", "white", "black", "starting_player", "winner", "total_moves", "start_time", "end_time", "duration"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Matchup),
			strconv.Itoa(record.White),
			strconv.Itoa(record.Black),
			record.StartingPlayer,
			record.Winner,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return errors.Wrap(w.writeCSV("game_records.csv", rows), "game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{{"game", "step", "player", "move", "episodes", "terminals", "expansions", "tree_size", "backup", "duration"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.TreeSize),
			record.Backup,
			record.Duration.String(),
		})
	}
	return errors.Wrap(w.writeCSV("move_records.csv", rows), "move records")
}

func (w *Writer) writeCSV(name string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil { // WriteAll flushes
		return errors.Wrap(err, "failed to write rows")
	}
	return nil
}
