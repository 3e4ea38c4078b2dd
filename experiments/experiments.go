package experiments

import (
	"context"

	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
	"hex/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Results holds every finished game of an experiment, ordered by game id.
type Results struct {
	Matchups []metrics.Matchup
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
}

type job struct {
	id      int
	matchup metrics.Matchup
	game    int // Index within the matchup
}

// Run plays config.Games games per matchup, at most config.Concurrency at a
// time. The first error cancels the remaining games.
func Run(ctx context.Context, config Config) (Results, error) {
	jobs := []job{}
	matchups := make([]metrics.Matchup, len(config.Matchups))
	for mi, pair := range config.Matchups {
		matchups[mi] = metrics.Matchup{ID: mi + 1, Agent1: pair[0], Agent2: pair[1]}
		for i := 0; i < config.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, matchup: matchups[mi], game: i})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", config.Name, len(jobs))

	games := make([]metrics.GameRecord, len(jobs))
	moves := make([][]metrics.MoveRecord, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Concurrency)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moveRecords, err := runGame(config, j)
			if err != nil {
				return errors.Wrapf(err, "game %d", j.id)
			}
			games[i] = record
			moves[i] = moveRecords
			log.Info().Msgf("completed %s game %d of %d with winner agent %d", j.matchup, j.game+1, config.Games, record.WinnerID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	results := Results{Matchups: matchups, Games: games}
	for _, mm := range moves {
		results.Moves = append(results.Moves, mm...)
	}

	log.Info().Msgf("completed %s experiment", config.Name)
	return results, nil
}

// Execute runs the experiment and stores its configs, records and chart under
// config.Output. It returns the directory written to.
func Execute(ctx context.Context, config Config) (string, error) {
	results, err := Run(ctx, config)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", err
	}
	if err := writer.WriteWinRateChart(results.Matchups, results.Games); err != nil {
		return "", err
	}
	log.Info().Msgf("stored experiment results in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays one game. Agent1 takes white on even games and black on odd
// ones; white always moves first.
func runGame(config Config, j job) (metrics.GameRecord, []metrics.MoveRecord, error) {
	whiteID, blackID := j.matchup.Agent1, j.matchup.Agent2
	if j.game%2 == 1 {
		whiteID, blackID = blackID, whiteID
	}
	seed := uint64(j.id)

	white, err := createEngine(config.agent(whiteID), game.White, config.Size, seed)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	black, err := createEngine(config.agent(blackID), game.Black, config.Size, seed)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	opening := randomOpening(config.Size, config.OpeningMoves, config.Seed+seed)
	match, err := engine.LocalMatch(white, black, game.White, opening...)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	_, gameMetric, moveMetrics, err := match.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:         j.id,
		Matchup:    j.matchup.ID,
		White:      whiteID,
		Black:      blackID,
		GameMetric: gameMetric,
	}
	moveRecords := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moveRecords[i] = metrics.MoveRecord{Game: j.id, MoveMetric: mm}
	}
	return record, moveRecords, nil
}

func createEngine(config metrics.AgentConfig, colour game.Cell, size int, gameSeed uint64) (*engine.Engine, error) {
	seed := config.Seed + gameSeed
	evaluator, err := game.NewEvaluator(config.Evaluator, seed)
	if err != nil {
		return nil, err
	}
	backup, ok := searcher.ParseBackup(config.Backup)
	if !ok {
		return nil, errors.Errorf("unknown backup %q", config.Backup)
	}

	mcts := searcher.NewMCTS(
		searcher.WithEpisodes(config.Episodes),
		searcher.WithEvaluator(evaluator),
		searcher.WithBackup(backup),
		searcher.WithMetrics(),
	)
	var a agent.Agent
	if config.Temperature > 0 {
		a = agent.NewTrainingAgent(mcts, config.Temperature, rand.New(rand.NewSource(seed)))
	} else {
		a = agent.NewEvaluationAgent(mcts)
	}
	return engine.New(colour, engine.WithAgent(a), engine.WithBoardSize(size))
}

// randomOpening picks n distinct cells.
func randomOpening(size, n int, seed uint64) []string {
	rng := rand.New(rand.NewSource(seed))
	opening := make([]string, 0, n)
	for _, cell := range rng.Perm(size * size)[:n] {
		opening = append(opening, game.Encode(cell, size))
	}
	return opening
}
