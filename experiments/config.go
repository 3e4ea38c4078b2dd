package experiments

import (
	"os"

	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
	"hex/searcher"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config is the YAML description of an experiment. Each matchup lists two
// agent ids; the agents swap colours every game.
type Config struct {
	Name         string                `yaml:"name"`
	Size         int                   `yaml:"size"`
	Games        int                   `yaml:"games"` // Per matchup
	Concurrency  int                   `yaml:"concurrency"`
	OpeningMoves int                   `yaml:"opening_moves"` // Random plies before the engines search
	Seed         uint64                `yaml:"seed"`
	Output       string                `yaml:"output"`
	Agents       []metrics.AgentConfig `yaml:"agents"`
	Matchups     [][2]int              `yaml:"matchups"`
}

// LoadConfig reads and validates a YAML experiment file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, fills defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	config := Config{ // Default values
		Name:        "selfplay",
		Size:        meta.DEFAULT_BOARD_SIZE,
		Games:       10,
		Concurrency: meta.MAX_GAMES,
		Output:      "experiments",
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	if err := game.ValidateSize(c.Size); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.Games <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "games must be positive, got %d", c.Games)
	}
	if c.Concurrency <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "concurrency must be positive, got %d", c.Concurrency)
	}
	if c.OpeningMoves < 0 || c.OpeningMoves >= c.Size*c.Size {
		return errors.Wrapf(ErrInvalidConfig, "opening_moves %d does not fit a %dx%d board", c.OpeningMoves, c.Size, c.Size)
	}
	if len(c.Matchups) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no matchups")
	}

	seen := map[int]bool{}
	for _, a := range c.Agents {
		if seen[a.ID] {
			return errors.Wrapf(ErrInvalidConfig, "duplicate agent id %d", a.ID)
		}
		seen[a.ID] = true
		if _, err := game.NewEvaluator(a.Evaluator, 0); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "agent %d: %v", a.ID, err)
		}
		if _, ok := searcher.ParseBackup(a.Backup); !ok {
			return errors.Wrapf(ErrInvalidConfig, "agent %d: unknown backup %q", a.ID, a.Backup)
		}
		if a.Temperature < 0 {
			return errors.Wrapf(ErrInvalidConfig, "agent %d: negative temperature", a.ID)
		}
	}
	for _, m := range c.Matchups {
		for _, id := range m {
			if !seen[id] {
				return errors.Wrapf(ErrInvalidConfig, "matchup references unknown agent %d", id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic("unknown agent id")
}
