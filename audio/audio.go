package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	eatToneHz       = 880
	eatToneDuration = 50 * time.Millisecond

	// GameOverToneDuration is exported so the driver can hold the process
	// open long enough for the tone to finish before the speaker closes.
	gameOverToneHz       = 220
	GameOverToneDuration = 300 * time.Millisecond
)

// Player produces the game's tone effects. The zero value and nil are
// both silent, so callers never branch on whether audio came up.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. An error means the game runs
// without sound; it is not fatal.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Player{ready: true}, nil
}

// PlayEat emits a short high blip for apple consumption
func (p *Player) PlayEat() {
	p.tone(eatToneHz, eatToneDuration)
}

// PlayGameOver emits a longer low tone for collisions
func (p *Player) PlayGameOver() {
	p.tone(gameOverToneHz, GameOverToneDuration)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if p == nil || !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down
func (p *Player) Close() {
	if p == nil || !p.ready {
		return
	}
	speaker.Close()
}
