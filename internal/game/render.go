package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/daedalus-games/theseus/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"

	clearScreen = "\033c"
)

const (
	playerGlyph   = '*'
	minotaurGlyph = 'M'
)

// RenderOptions controls how frames are drawn
type RenderOptions struct {
	Color       bool
	ClearScreen bool
}

// Renderer draws session snapshots to a terminal. It only consumes
// turns; it never feeds anything back into the game.
type Renderer struct {
	out  io.Writer
	opts RenderOptions
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, opts RenderOptions) *Renderer {
	return &Renderer{out: out, opts: opts}
}

// Frame renders the session's current turn, the moves taken so far and,
// on a terminal configuration, the outcome banner
func (r *Renderer) Frame(s *Session) {
	fmt.Fprint(r.out, RenderTurn(s.Grid(), s.Current(), s.Phase(), r.opts))
}

// Quit renders the intentional-exit banner
func (r *Renderer) Quit() {
	fmt.Fprintln(r.out, "You quit!")
}

// RenderTurn builds the textual frame for one turn: the maze with the
// player and minotaur glyphs overlaid, one row per line, followed by
// the move history in wire form.
func RenderTurn(g core.Grid, t Turn, phase Phase, opts RenderOptions) string {
	var sb strings.Builder

	if opts.ClearScreen {
		sb.WriteString(clearScreen)
	}

	for y, row := range g {
		for x, tile := range row {
			pos := core.Coordinate{X: x, Y: y}
			switch {
			// On a collision the minotaur is drawn over the player.
			case pos.Equal(t.Minotaur):
				writeGlyph(&sb, minotaurGlyph, ColorRed, opts)
			case pos.Equal(t.Player):
				writeGlyph(&sb, playerGlyph, ColorGreen, opts)
			case tile == core.TileFinish:
				writeGlyph(&sb, tile.Rune(), ColorYellow, opts)
			case tile.IsWall():
				writeGlyph(&sb, tile.Rune(), ColorGray, opts)
			default:
				sb.WriteRune(tile.Rune())
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Moves: " + core.FormatMoves(t.Moves) + "\n")

	switch phase {
	case PhaseWon:
		sb.WriteString("You win!\n")
	case PhaseLost:
		sb.WriteString("You lose!\n")
	}

	return sb.String()
}

func writeGlyph(sb *strings.Builder, glyph rune, color string, opts RenderOptions) {
	if opts.Color {
		sb.WriteString(color)
		sb.WriteRune(glyph)
		sb.WriteString(ColorReset)
		return
	}
	sb.WriteRune(glyph)
}
