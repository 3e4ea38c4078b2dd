package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"hex/communication"
	"hex/engine"
	"hex/experiments"
	"hex/game"
	"hex/meta"
	"hex/searcher"
	"hex/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	colour := flag.String("color", "white", "Colour played by the bot: white or black")
	size := flag.Int("size", meta.DEFAULT_BOARD_SIZE, "Initial board size")
	episodes := flag.Int("episodes", meta.EPISODES, "Number of simulations per move")
	evaluator := flag.String("evaluator", "uniform", "Leaf evaluator: uniform, random or distance")
	backup := flag.String("backup", searcher.Negamax.String(), "Backup mode: negamax or reference")
	temperature := flag.Float64("temperature", 0, "Sample moves by visits at this temperature; 0 plays the best move")
	seed := flag.Uint64("seed", 1, "Seed for random evaluators and sampling")
	colours := flag.Bool("colours", false, "Colour show_board output")
	level := flag.String("log-level", "info", "Log level")
	experiment := flag.String("experiment", "", "Run the self-play experiment described by this YAML file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if l, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(l)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *experiment != "" {
		config, err := experiments.LoadConfig(*experiment)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
		if _, err := experiments.Execute(ctx, config); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	c, ok := game.ParseColour(*colour)
	if !ok {
		log.Fatal().Msgf("unknown colour %q", *colour)
	}
	eval, err := game.NewEvaluator(*evaluator, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create evaluator")
	}
	mode, ok := searcher.ParseBackup(*backup)
	if !ok {
		log.Fatal().Msgf("unknown backup %q", *backup)
	}

	mcts := searcher.NewMCTS(searcher.WithEpisodes(*episodes), searcher.WithEvaluator(eval), searcher.WithBackup(mode))
	a := agent.NewEvaluationAgent(mcts)
	if *temperature > 0 {
		a = agent.NewTrainingAgent(mcts, *temperature, rand.New(rand.NewSource(*seed)))
	}
	e, err := engine.New(c, engine.WithAgent(a), engine.WithBoardSize(*size))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	options := []communication.Option{}
	if *colours {
		options = append(options, communication.WithColours())
	}
	err = communication.Serve(ctx, os.Stdin, os.Stdout, e, options...)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("session ended")
	}
}
