package communication

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind is the closed set of commands understood by the bot.
type Kind int

const (
	InitBoard Kind = iota
	ShowBoard
	MakeMove
	SetOpponent // seto: the opponent played a move
	SetOwn      // sety: play a move for this bot
	Unset
	CheckWin
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
)

type signature struct {
	name  string
	arity int
}

var signatures = map[Kind]signature{
	InitBoard:   {"init_board", 1},
	ShowBoard:   {"show_board", 0},
	MakeMove:    {"make_move", 0},
	SetOpponent: {"seto", 1},
	SetOwn:      {"sety", 1},
	Unset:       {"unset", 1},
	CheckWin:    {"check_win", 0},
}

func (k Kind) String() string {
	if s, ok := signatures[k]; ok {
		return s.name
	}
	return "unknown"
}

// Arity is the number of arguments the command takes.
func (k Kind) Arity() int {
	return signatures[k].arity
}

// Command is one parsed protocol line. Arg is set only for commands of arity 1.
type Command struct {
	Kind Kind
	Arg  string
}

// Parse splits a line on whitespace and checks the command name and its
// argument count.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	for kind, s := range signatures {
		if s.name != fields[0] {
			continue
		}
		if len(fields)-1 != s.arity {
			return Command{}, errors.Wrapf(ErrArity, "%s takes %d, got %d", s.name, s.arity, len(fields)-1)
		}
		cmd := Command{Kind: kind}
		if s.arity == 1 {
			cmd.Arg = fields[1]
		}
		return cmd, nil
	}
	return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
}
