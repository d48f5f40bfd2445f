package game

import (
	"errors"
	"math/rand"
	"time"
)

// BoardSize is the side length of the square play field, in cells
const BoardSize = 20

const (
	// InitialMoveMs is the starting simulation tick interval
	InitialMoveMs int64 = 200
	// MinMoveMs is the speed floor; eating never drives the interval below it
	MinMoveMs int64 = 50
	// SpeedupMs is subtracted from the interval on each apple eaten
	SpeedupMs int64 = 10
)

// ErrBoardFull reports that no free cell remains for apple placement.
// Unreachable in realistic play, but defined rather than panicking on an
// empty candidate list.
var ErrBoardFull = errors.New("no free cell left to place an apple")

// Point is a board cell coordinate, origin top-left
type Point struct {
	X, Y int
}

// Status is the run state of a game
type Status uint8

const (
	StatusRunning Status = iota
	StatusQuit
	StatusWallCollision
	StatusSelfCollision
)

// Over reports whether the status is terminal
func (s Status) Over() bool {
	return s != StatusRunning
}

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusQuit:
		return "Quit"
	case StatusWallCollision:
		return "WallCollision"
	case StatusSelfCollision:
		return "SelfCollision"
	default:
		return "Unknown"
	}
}

// Game is the whole simulation state: snake, heading, apple and pacing.
// The driver owns exactly one instance and mutates it from a single
// goroutine, so no locking exists here.
type Game struct {
	Snake   []Point // head first, tail last, length >= 1
	Heading Direction
	Apple   Point
	MoveMs  int64 // current tick interval, milliseconds

	lastTick time.Time
}

// NewGame returns the fixed initial layout: a single-cell snake at board
// center heading right, apple a third of the way up the center column.
func NewGame(now time.Time) *Game {
	return &Game{
		Snake:    []Point{{BoardSize / 2, BoardSize / 2}},
		Heading:  Right,
		Apple:    Point{BoardSize / 2, BoardSize / 3},
		MoveMs:   InitialMoveMs,
		lastTick: now,
	}
}

// IsValidTurn reports whether the snake may change heading to d.
// With a body, the turn is rejected when one step in d from the head
// lands on the second segment (reversing into the neck). With a single
// cell there is no neck yet, so only the exact opposite heading is
// rejected.
func (g *Game) IsValidTurn(d Direction) bool {
	if len(g.Snake) > 1 {
		dx, dy := d.Delta()
		head := g.Snake[0]
		return Point{head.X + dx, head.Y + dy} != g.Snake[1]
	}
	return g.Heading.Opposite() != d
}

// Turn changes the heading when valid and reports whether it was applied
func (g *Game) Turn(d Direction) bool {
	if !g.IsValidTurn(d) {
		return false
	}
	g.Heading = d
	return true
}

// Step advances the simulation for one loop iteration. A movement tick
// runs only when the interval has elapsed since the last one; the apple
// check runs every call regardless. Returns the run status, whether an
// apple was eaten, and an error only for apple-placement exhaustion.
func (g *Game) Step(now time.Time) (Status, bool, error) {
	if now.Sub(g.lastTick).Milliseconds() > g.MoveMs {
		if st := g.advance(); st.Over() {
			return st, false, nil
		}
		g.lastTick = now
	}

	if g.Snake[0] == g.Apple {
		if err := g.consume(); err != nil {
			return StatusRunning, false, err
		}
		return StatusRunning, true, nil
	}
	return StatusRunning, false, nil
}

// advance moves the snake one cell along the current heading.
// Order matters: the wall check precedes the self check, and the tail is
// popped before the self check so the head may enter the cell the tail is
// vacating this tick.
func (g *Game) advance() Status {
	dx, dy := g.Heading.Delta()
	head := g.Snake[0]

	if (head.X == 0 && dx < 0) || (head.Y == 0 && dy < 0) ||
		(head.X == BoardSize-1 && dx > 0) || (head.Y == BoardSize-1 && dy > 0) {
		return StatusWallCollision
	}

	g.Snake = g.Snake[:len(g.Snake)-1]

	next := Point{head.X + dx, head.Y + dy}
	for _, p := range g.Snake {
		if p == next {
			return StatusSelfCollision
		}
	}

	g.Snake = append(g.Snake, Point{})
	copy(g.Snake[1:], g.Snake)
	g.Snake[0] = next
	return StatusRunning
}

// consume grows the tail, respawns the apple and speeds the game up
func (g *Game) consume() error {
	var gx, gy int
	n := len(g.Snake)
	if n > 1 {
		last, prev := g.Snake[n-1], g.Snake[n-2]
		gx, gy = last.X-prev.X, last.Y-prev.Y
	} else {
		dx, dy := g.Heading.Delta()
		gx, gy = -dx, -dy
	}

	// The growth cell extrapolates the tail trajectory with no upper
	// bound check; the next tick's collision checks catch any overlap.
	tail := g.Snake[n-1]
	g.Snake = append(g.Snake, Point{satAdd(tail.X, gx), satAdd(tail.Y, gy)})

	free := g.freeCells()
	if len(free) == 0 {
		return ErrBoardFull
	}
	g.Apple = free[rand.Intn(len(free))]

	g.MoveMs -= SpeedupMs
	if g.MoveMs < MinMoveMs {
		g.MoveMs = MinMoveMs
	}
	return nil
}

// freeCells collects every board cell not occupied by the snake
func (g *Game) freeCells() []Point {
	occupied := make(map[Point]bool, len(g.Snake))
	for _, p := range g.Snake {
		occupied[p] = true
	}

	free := make([]Point, 0, BoardSize*BoardSize-len(g.Snake))
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if p := (Point{x, y}); !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// Score is the number of segments grown beyond the initial single cell
func (g *Game) Score() int {
	return len(g.Snake) - 1
}

// satAdd adds a signed delta to an unsigned board coordinate, saturating
// at zero
func satAdd(v, d int) int {
	if v+d < 0 {
		return 0
	}
	return v + d
}
