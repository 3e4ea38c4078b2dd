package game

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// SwapMove is the pie-rule token. It is recognised but not supported.
const SwapMove = "swap"

// MaxSize is the largest board whose rows can be named by a single letter.
const MaxSize = 26

var (
	ErrSwapUnsupported = errors.New("swap move is not supported")
	ErrInvalidSize     = errors.New("invalid board size")
)

// FormatError reports move text that is malformed or off the board.
type FormatError struct {
	Move   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid move %q: %s", e.Move, e.Reason)
}

// ValidateSize checks that size can be played and encoded.
func ValidateSize(size int) error {
	if size <= 0 || size > MaxSize {
		return errors.Wrapf(ErrInvalidSize, "size %d must be in [1, %d]", size, MaxSize)
	}
	return nil
}

// Encode converts a cell index to its text form, e.g. 0 -> "a1".
func Encode(cell, size int) string {
	letter := rune('a' + cell/size)
	return fmt.Sprintf("%c%d", letter, cell%size+1)
}

// Decode converts text such as "b3" to a cell index on a board of the given size.
func Decode(move string, size int) (int, error) {
	if move == SwapMove {
		return 0, ErrSwapUnsupported
	}
	if len(move) < 2 {
		return 0, &FormatError{Move: move, Reason: "must be a letter followed by a number, e.g. a12"}
	}
	if move[0] < 'a' || move[0] > 'z' {
		return 0, &FormatError{Move: move, Reason: "first character must be a letter a-z"}
	}
	digits := move[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, &FormatError{Move: move, Reason: "digits must follow the first character"}
		}
	}

	row := int(move[0] - 'a')
	if row >= size {
		return 0, &FormatError{Move: move, Reason: fmt.Sprintf("row letter must be below %c", rune('a'+size))}
	}
	number, err := strconv.Atoi(digits)
	if err != nil || number <= 0 || number > size {
		return 0, &FormatError{Move: move, Reason: fmt.Sprintf("number must be in (0, %d]", size)}
	}
	return row*size + number - 1, nil
}
