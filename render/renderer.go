package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-pit/game"
)

const (
	// MinWidth and MinHeight are the smallest usable screen size: the
	// board plus border, at two columns per board cell.
	MinWidth  = (game.BoardSize + 2) * 2
	MinHeight = game.BoardSize + 2
)

// Thick box-drawing set for the play field border
const (
	borderTopLeft     = '┏'
	borderTopRight    = '┓'
	borderBottomLeft  = '┗'
	borderBottomRight = '┛'
	borderHorizontal  = '━'
	borderVertical    = '┃'
)

// Renderer projects game state onto a tcell screen. It reads the game,
// never mutates it.
type Renderer struct {
	screen tcell.Screen

	borderStyle tcell.Style
	titleStyle  tcell.Style
	appleStyle  tcell.Style
	snakeStyle  tcell.Style
}

// New creates a renderer for the given screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:      screen,
		borderStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		titleStyle:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		appleStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed),
		snakeStyle:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// Draw renders one full frame: centered bordered play field titled with
// the score, then the apple, then every snake segment. Board cells map to
// one row by two columns to approximate square cells in terminal fonts.
// The screen must be strictly larger than MinWidth x MinHeight; the size
// is checked on every frame so shrinking the terminal mid-game fails
// cleanly.
func (r *Renderer) Draw(g *game.Game) error {
	width, height := r.screen.Size()
	if width <= MinWidth || height <= MinHeight {
		return fmt.Errorf("terminal window must be at least %dx%d characters, got %dx%d",
			MinWidth, MinHeight, width, height)
	}

	r.screen.Clear()

	boardX := width/2 - game.BoardSize
	boardY := height/2 - game.BoardSize/2
	boardW := (game.BoardSize - 1) * 2
	boardH := game.BoardSize

	title := fmt.Sprintf(" Score: %d ", g.Score())
	r.drawBorder(boardX-1, boardY-1, boardW+4, boardH+2, title)

	r.drawCell(boardX, boardY, g.Apple, '#', r.appleStyle)
	for _, p := range g.Snake {
		r.drawCell(boardX, boardY, p, '█', r.snakeStyle)
	}

	r.screen.Show()
	return nil
}

// drawCell paints one board cell as a two-column glyph
func (r *Renderer) drawCell(boardX, boardY int, p game.Point, glyph rune, style tcell.Style) {
	x := boardX + p.X*2
	y := boardY + p.Y
	r.screen.SetContent(x, y, glyph, nil, style)
	r.screen.SetContent(x+1, y, glyph, nil, style)
}

func (r *Renderer) drawBorder(x, y, w, h int, title string) {
	r.screen.SetContent(x, y, borderTopLeft, nil, r.borderStyle)
	r.screen.SetContent(x+w-1, y, borderTopRight, nil, r.borderStyle)
	r.screen.SetContent(x, y+h-1, borderBottomLeft, nil, r.borderStyle)
	r.screen.SetContent(x+w-1, y+h-1, borderBottomRight, nil, r.borderStyle)

	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, borderHorizontal, nil, r.borderStyle)
		r.screen.SetContent(x+i, y+h-1, borderHorizontal, nil, r.borderStyle)
	}
	for i := 1; i < h-1; i++ {
		r.screen.SetContent(x, y+i, borderVertical, nil, r.borderStyle)
		r.screen.SetContent(x+w-1, y+i, borderVertical, nil, r.borderStyle)
	}

	if title != "" {
		titleX := x + (w-len([]rune(title)))/2
		for i, ch := range []rune(title) {
			r.screen.SetContent(titleX+i, y, ch, nil, r.titleStyle)
		}
	}
}
