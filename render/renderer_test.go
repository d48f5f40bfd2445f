package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-pit/game"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to initialize, got %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func runeAt(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func rowString(t *testing.T, screen tcell.SimulationScreen, y int) string {
	t.Helper()
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Runes[0])
		}
	}
	return sb.String()
}

func TestDrawRejectsUndersizedScreen(t *testing.T) {
	screen := newTestScreen(t, MinWidth, MinHeight)
	r := New(screen)
	g := game.NewGame(time.Now())

	err := r.Draw(g)
	if err == nil {
		t.Fatal("Expected an error on an undersized screen")
	}
	if !strings.Contains(err.Error(), "44x22") {
		t.Errorf("Expected error to name the minimum size 44x22, got %q", err.Error())
	}
}

func TestDrawBorderAndGlyphs(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := New(screen)
	g := game.NewGame(time.Now())

	if err := r.Draw(g); err != nil {
		t.Fatalf("Expected no draw error, got %v", err)
	}

	// 80x24: board origin (20,2), border rect (19,1) 42x22
	const boardX, boardY = 20, 2
	corners := []struct {
		x, y int
		want rune
	}{
		{19, 1, '┏'},
		{60, 1, '┓'},
		{19, 22, '┗'},
		{60, 22, '┛'},
	}
	for _, c := range corners {
		if got := runeAt(t, screen, c.x, c.y); got != c.want {
			t.Errorf("Expected corner %q at (%d,%d), got %q", c.want, c.x, c.y, got)
		}
	}
	if got := runeAt(t, screen, 19, 10); got != '┃' {
		t.Errorf("Expected vertical border at (19,10), got %q", got)
	}

	// Head (10,10) maps to two snake columns at (40,12)
	if got := runeAt(t, screen, 40, 12); got != '█' {
		t.Errorf("Expected snake glyph at (40,12), got %q", got)
	}
	if got := runeAt(t, screen, 41, 12); got != '█' {
		t.Errorf("Expected snake glyph at (41,12), got %q", got)
	}

	// Apple (10,6) maps to (40,8)
	if got := runeAt(t, screen, 40, 8); got != '#' {
		t.Errorf("Expected apple glyph at (40,8), got %q", got)
	}
	if got := runeAt(t, screen, 41, 8); got != '#' {
		t.Errorf("Expected apple glyph at (41,8), got %q", got)
	}
}

func TestDrawScoreTitle(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := New(screen)
	g := game.NewGame(time.Now())
	g.Snake = []game.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	if err := r.Draw(g); err != nil {
		t.Fatalf("Expected no draw error, got %v", err)
	}

	// Score is segments beyond the initial cell: length 3 renders 2
	if row := rowString(t, screen, 1); !strings.Contains(row, " Score: 2 ") {
		t.Errorf("Expected title row to contain \" Score: 2 \", got %q", row)
	}
}

func TestDrawSnakeOverpaintsApple(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := New(screen)
	g := game.NewGame(time.Now())
	g.Apple = g.Snake[0]

	if err := r.Draw(g); err != nil {
		t.Fatalf("Expected no draw error, got %v", err)
	}

	// Segments draw after the apple, so a coincident apple is hidden
	if got := runeAt(t, screen, 40, 12); got != '█' {
		t.Errorf("Expected snake glyph over coincident apple at (40,12), got %q", got)
	}
}
