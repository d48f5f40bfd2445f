package input

import "github.com/lixenwraith/snake-pit/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentTurn   // w/a/s/d, arrow keys
	IntentQuit   // q, ESC, Ctrl+C
	IntentResize // terminal resize event
)

// Intent is one translated input event. Direction is meaningful only for
// IntentTurn.
type Intent struct {
	Type      IntentType
	Direction game.Direction
}
