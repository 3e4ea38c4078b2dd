package communication

import (
	"strings"

	"hex/game"

	"github.com/logrusorgru/aurora"
)

// Render draws board the way show_board prints it: one character per cell
// and a '|' closing each row. With colours, white stones are cyan and black
// stones red.
func Render(board game.Board, colours bool) string {
	if !colours {
		return board.String()
	}

	au := aurora.NewAurora(true)
	var sb strings.Builder
	for cell := 0; cell < board.Len(); cell++ {
		switch c := board.At(cell); c {
		case game.White:
			sb.WriteString(au.Cyan(c.String()).String())
		case game.Black:
			sb.WriteString(au.Red(c.String()).String())
		default:
			sb.WriteString(au.Gray(12, c.String()).String())
		}
		if (cell+1)%board.Size() == 0 {
			sb.WriteString(au.White("|").String())
		}
	}
	return sb.String()
}
