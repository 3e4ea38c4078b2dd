package communication

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"hex/engine"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(s *server)

type server struct {
	engine  *engine.Engine
	out     io.Writer
	colours bool
}

// WithColours colourises show_board output.
func WithColours() Option {
	return func(s *server) {
		s.colours = true
	}
}

// Serve reads commands line by line from in and writes replies to out until
// in is exhausted or ctx is cancelled. Bad lines are logged and skipped.
// On cancellation the reader goroutine stays blocked on in until it returns.
func Serve(ctx context.Context, in io.Reader, out io.Writer, e *engine.Engine, options ...Option) error {
	s := &server{engine: e, out: out}
	for _, option := range options {
		option(s)
	}

	lines := make(chan string)
	readErr := make(chan error, 1) // Written exactly once before lines closes
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(<-readErr, "failed to read commands")
		}

		cmd, err := Parse(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			log.Warn().Err(err).Msg("skipping command")
			continue
		}
		if err := s.execute(cmd); err != nil {
			log.Error().Err(err).Str("command", cmd.Kind.String()).Str("arg", cmd.Arg).Msg("command failed")
		}
	}
}

// execute runs one command against the engine.
func (s *server) execute(cmd Command) error {
	e := s.engine
	switch cmd.Kind {
	case InitBoard:
		size, err := strconv.Atoi(cmd.Arg)
		if err != nil {
			return errors.Wrapf(err, "board size %q", cmd.Arg)
		}
		return e.InitBoard(size)
	case ShowBoard:
		return s.println(Render(e.Board(), s.colours))
	case MakeMove:
		move, err := e.ChooseMove()
		if err != nil {
			return err
		}
		return s.println(move)
	case SetOpponent:
		placed, err := e.ApplyOpponentMove(cmd.Arg)
		if err == nil && !placed {
			log.Warn().Msgf("seto %s: cell is not empty", cmd.Arg)
		}
		return err
	case SetOwn:
		placed, err := e.ApplyOwnMove(cmd.Arg)
		if err == nil && !placed {
			log.Warn().Msgf("sety %s: cell is not empty", cmd.Arg)
		}
		return err
	case Unset:
		return e.ClearCell(cmd.Arg)
	case CheckWin:
		return s.println(strconv.Itoa(e.CheckOutcome()))
	}
	return errors.Wrapf(ErrUnknownCommand, "kind %d", cmd.Kind)
}

func (s *server) println(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}
