package input

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-pit/game"
)

// ErrScreenClosed reports that the event source went away mid-drain.
// There is no safe way to continue on a broken input stream.
var ErrScreenClosed = errors.New("event screen closed while draining input")

// Translate maps one tcell event to a semantic intent. tcell delivers key
// presses only, so release filtering is implicit. Unknown keys map to
// IntentNone.
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return Intent{Type: IntentTurn, Direction: game.Up}
		case tcell.KeyDown:
			return Intent{Type: IntentTurn, Direction: game.Down}
		case tcell.KeyLeft:
			return Intent{Type: IntentTurn, Direction: game.Left}
		case tcell.KeyRight:
			return Intent{Type: IntentTurn, Direction: game.Right}
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Intent{Type: IntentQuit}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				return Intent{Type: IntentTurn, Direction: game.Up}
			case 's', 'S':
				return Intent{Type: IntentTurn, Direction: game.Down}
			case 'a', 'A':
				return Intent{Type: IntentTurn, Direction: game.Left}
			case 'd', 'D':
				return Intent{Type: IntentTurn, Direction: game.Right}
			case 'q', 'Q':
				return Intent{Type: IntentQuit}
			}
		}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{Type: IntentNone}
}

// Drain translates every currently-pending event without blocking, in
// arrival order. The zero-timeout contract comes from HasPendingEvent:
// PollEvent is only called when an event is already queued.
func Drain(screen tcell.Screen) ([]Intent, error) {
	var intents []Intent
	for screen.HasPendingEvent() {
		ev := screen.PollEvent()
		if ev == nil {
			return intents, ErrScreenClosed
		}
		if in := Translate(ev); in.Type != IntentNone {
			intents = append(intents, in)
		}
	}
	return intents, nil
}
