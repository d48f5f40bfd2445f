package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-pit/audio"
	"github.com/lixenwraith/snake-pit/game"
	"github.com/lixenwraith/snake-pit/input"
	"github.com/lixenwraith/snake-pit/render"
	"github.com/lixenwraith/snake-pit/terminal"
)

// frameInterval paces the outer loop; simulation pacing lives inside
// game.Step and is driven by the move interval, not the frame rate.
const frameInterval = 16 * time.Millisecond

var muteFlag = flag.Bool("mute", false, "Disable sound effects")

func main() {
	// Panic recovery: restore the terminal to a sane state even if the
	// game crashes, then surface the error where it stays visible
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nsnake-pit crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-pit: failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-pit: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	var player *audio.Player
	if !*muteFlag {
		// Non-fatal, the game runs silent without a speaker
		player, _ = audio.NewPlayer()
	}

	score, err := run(screen, player)

	// Restore the terminal before any output or exit
	screen.Fini()
	player.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-pit: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Game over! Score: %d\n", score)
}

// run drives the loop until quit, collision or a fatal error. Each
// iteration drains input, applies intents, steps the simulation once and
// redraws the frame.
func run(screen tcell.Screen, player *audio.Player) (int, error) {
	g := game.NewGame(time.Now())
	r := render.New(screen)

	for {
		intents, err := input.Drain(screen)
		if err != nil {
			return g.Score(), err
		}
		for _, in := range intents {
			switch in.Type {
			case input.IntentQuit:
				return g.Score(), nil
			case input.IntentTurn:
				g.Turn(in.Direction)
			case input.IntentResize:
				screen.Sync()
			}
		}

		status, ate, err := g.Step(time.Now())
		if err != nil {
			return g.Score(), err
		}
		if status.Over() {
			if player != nil {
				player.PlayGameOver()
				// Let the tone finish before the speaker closes
				time.Sleep(audio.GameOverToneDuration)
			}
			return g.Score(), nil
		}
		if ate {
			player.PlayEat()
		}

		if err := r.Draw(g); err != nil {
			return g.Score(), err
		}

		time.Sleep(frameInterval)
	}
}
