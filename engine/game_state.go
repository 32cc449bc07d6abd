package engine

import (
	"time"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/piece"
	"github.com/lixenwraith/blockfall/shape"
)

// Phase is the lifecycle step of the current piece
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLanded
	PhaseClearing
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "SPAWNING"
	case PhaseFalling:
		return "FALLING"
	case PhaseLanded:
		return "LANDED"
	case PhaseClearing:
		return "CLEARING"
	default:
		return "UNKNOWN"
	}
}

// Status is the outer game state; GameOver and Quit are terminal
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusGameOver:
		return "GAME OVER"
	case StatusQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the game has ended
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// GameState is everything the loop owns. It is only touched by the goroutine running the Game.
type GameState struct {
	Board  *board.Board
	Active piece.Piece
	// HasActive is false between landing and the next spawn, and after game over
	HasActive bool
	Queue     *Queue

	Phase  Phase
	Status Status

	Score  int
	Lines  int
	Pieces int

	// Rows flashing before removal, valid while Phase == PhaseClearing
	ClearRows  []int
	ClearStart time.Time

	LastFall time.Time
}

// Outcome summarises a finished game
type Outcome struct {
	Status Status
	Score  int
	Lines  int
	Pieces int
}

// Frame is the per-tick snapshot handed to the renderer; it shares no memory with GameState
type Frame struct {
	Board     []board.CellColor
	Active    []board.CellColor
	Highlight []int
	FlashOn   bool
	Next      []shape.ID
	Score     int
	Lines     int
	Pieces    int
	Phase     Phase
	Status    Status
}
