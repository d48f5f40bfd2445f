package audio

import "testing"

// The driver calls through a possibly-nil player when audio is muted or
// the speaker failed to come up; every method must tolerate that.
func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.PlayEat()
	p.PlayGameOver()
	p.Close()

	zero := &Player{}
	zero.PlayEat()
	zero.PlayGameOver()
	zero.Close()
}
