package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/they4kman/saper/game"
)

var numberColors = map[game.CellState]lipgloss.Color{
	game.Number1: "12",
	game.Number2: "2",
	game.Number3: "9",
	game.Number4: "4",
	game.Number5: "1",
	game.Number6: "6",
	game.Number7: "0",
	game.Number8: "8",
}

// palette styles cell glyphs for the shell's output. Colors are dropped when
// the output is not a terminal.
type palette struct {
	cells   map[game.CellState]lipgloss.Style
	plain   lipgloss.Style
	win     lipgloss.Style
	loss    lipgloss.Style
	heading lipgloss.Style
}

func newPalette(out io.Writer) palette {
	renderer := lipgloss.NewRenderer(out)

	p := palette{
		cells:   make(map[game.CellState]lipgloss.Style),
		plain:   renderer.NewStyle(),
		win:     renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		loss:    renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		heading: renderer.NewStyle().Faint(true),
	}
	for state, color := range numberColors {
		p.cells[state] = renderer.NewStyle().Foreground(color).Bold(true)
	}
	p.cells[game.Flag] = renderer.NewStyle().Foreground(lipgloss.Color("11"))
	p.cells[game.FlagWrong] = renderer.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	p.cells[game.MineLosing] = renderer.NewStyle().Background(lipgloss.Color("9"))
	p.cells[game.MineUnrevealed] = renderer.NewStyle().Foreground(lipgloss.Color("9"))

	return p
}

func (p palette) cell(state game.CellState) string {
	style, ok := p.cells[state]
	if !ok {
		style = p.plain
	}
	return style.Render(state.String())
}

// renderBoard draws the board with column and row indexes
func (p palette) renderBoard(board *game.Board) string {
	var builder strings.Builder

	builder.WriteString("    ")
	for x := 0; x < board.Size(); x++ {
		builder.WriteString(p.heading.Render(fmt.Sprintf("%2d", x)))
	}
	builder.WriteByte('\n')

	for y := 0; y < board.Size(); y++ {
		builder.WriteString(p.heading.Render(fmt.Sprintf("%3d ", y)))
		for x := 0; x < board.Size(); x++ {
			view, _ := board.View(x, y)
			builder.WriteByte(' ')
			builder.WriteString(p.cell(view.State))
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func (p palette) renderStatus(status game.Status) string {
	line := fmt.Sprintf("Flags: %s  Time: %ds", status.Flags(), status.Elapsed)
	switch status.State {
	case game.Won:
		line += "  " + p.win.Render(status.Message())
	case game.Lost:
		line += "  " + p.loss.Render(status.Message())
	}
	return line
}
