// Package engine runs the game: it owns the game state, advances gravity on
// a wall-clock schedule, applies player input and drives the renderer and
// sound collaborators once per tick.
package engine

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/piece"
)

// InputSource returns one pending key without blocking
type InputSource interface {
	PollKey() (rune, bool)
}

// Renderer draws a frame; it is called once per tick
type Renderer interface {
	Draw(Frame)
}

// SoundPlayer plays fire-and-forget effects; loops < 0 repeats indefinitely
type SoundPlayer interface {
	Play(sound audio.SoundType, loops int)
	Stop()
}

// Options controls loop timing and randomness
type Options struct {
	GravityPeriod time.Duration
	PollInterval  time.Duration
	// FlashDuration of zero clears full rows immediately on landing
	FlashDuration time.Duration
	FlashInterval time.Duration
	Seed          int64
}

// DefaultOptions returns the standard timing with a time-based seed
func DefaultOptions() Options {
	return Options{
		GravityPeriod: constants.GravityPeriod,
		PollInterval:  constants.PollInterval,
		FlashDuration: constants.ClearFlashDuration,
		FlashInterval: constants.ClearFlashInterval,
		Seed:          time.Now().UnixNano(),
	}
}

// Game owns the state and its collaborators
type Game struct {
	opts     Options
	state    *GameState
	clock    TimeProvider
	input    InputSource
	renderer Renderer
	sound    SoundPlayer
}

type nopRenderer struct{}

func (nopRenderer) Draw(Frame) {}

type nopSound struct{}

func (nopSound) Play(audio.SoundType, int) {}
func (nopSound) Stop()                     {}

// NewGame creates a game with an empty board and the first piece spawned.
// A nil renderer or sound player disables that output.
func NewGame(opts Options, clock TimeProvider, input InputSource, renderer Renderer, sound SoundPlayer) *Game {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if sound == nil {
		sound = nopSound{}
	}
	if opts.FlashInterval <= 0 {
		opts.FlashInterval = constants.ClearFlashInterval
	}

	queue, first := NewQueue(rand.New(rand.NewSource(opts.Seed)))
	now := clock.Now()

	g := &Game{
		opts:     opts,
		clock:    clock,
		input:    input,
		renderer: renderer,
		sound:    sound,
		state: &GameState{
			Board:    board.New(),
			Queue:    queue,
			Phase:    PhaseSpawning,
			Status:   StatusPlaying,
			LastFall: now,
		},
	}

	// Empty board, spawn cannot be blocked
	g.state.Active, g.state.HasActive = piece.TrySpawn(first, g.state.Board)
	g.state.Phase = PhaseFalling
	log.Printf("game: started, first piece %v, queue %v", first, queue.Peek())
	return g
}

// Status returns the current game status
func (g *Game) Status() Status {
	return g.state.Status
}

// Outcome returns the current result summary
func (g *Game) Outcome() Outcome {
	return Outcome{
		Status: g.state.Status,
		Score:  g.state.Score,
		Lines:  g.state.Lines,
		Pieces: g.state.Pieces,
	}
}

// Run ticks at the poll interval until game over, quit or ctx cancellation.
// Cancellation is reported as a quit.
func (g *Game) Run(ctx context.Context) Outcome {
	g.sound.Play(audio.SoundTheme, -1)
	defer g.sound.Stop()

	ticker := time.NewTicker(g.opts.PollInterval)
	defer ticker.Stop()

	g.renderer.Draw(g.Snapshot())

	for {
		select {
		case <-ctx.Done():
			if !g.state.Status.Terminal() {
				g.state.Status = StatusQuit
				log.Printf("game: interrupted: %v", ctx.Err())
			}
			return g.Outcome()
		case <-ticker.C:
			if g.Tick().Terminal() {
				return g.Outcome()
			}
		}
	}
}

// Tick runs one loop iteration: one input poll, a gravity step when due, one draw
func (g *Game) Tick() Status {
	s := g.state
	if s.Status.Terminal() {
		return s.Status
	}

	now := g.clock.Now()

	if key, ok := g.input.PollKey(); ok {
		g.apply(ActionForRune(key), now)
	}

	if !s.Status.Terminal() {
		switch s.Phase {
		case PhaseFalling:
			if now.Sub(s.LastFall) >= g.opts.GravityPeriod {
				g.fall(now)
			}
		case PhaseClearing:
			if now.Sub(s.ClearStart) >= g.opts.FlashDuration {
				g.finishClear(now)
			}
		}
	}

	g.renderer.Draw(g.snapshotAt(now))
	return s.Status
}

func (g *Game) apply(action Action, now time.Time) {
	s := g.state
	if action == ActionQuit {
		s.Status = StatusQuit
		log.Printf("game: quit with score %d", s.Score)
		return
	}
	if s.Phase != PhaseFalling || !s.HasActive {
		return
	}

	switch action {
	case ActionLeft:
		s.Active, _ = piece.TryMove(s.Active, -1, 0, s.Board)
	case ActionRight:
		s.Active, _ = piece.TryMove(s.Active, 1, 0, s.Board)
	case ActionRotate:
		s.Active, _ = piece.TryRotate(s.Active, s.Board)
	case ActionSoftDrop:
		var moved bool
		s.Active, moved = piece.TryMove(s.Active, 0, 1, s.Board)
		if moved {
			s.LastFall = now
		}
	}
}

func (g *Game) fall(now time.Time) {
	s := g.state
	s.LastFall = now

	next, landed := piece.TryFall(s.Active, s.Board)
	if !landed {
		s.Active = next
		return
	}

	s.Phase = PhaseLanded
	cells := s.Active.Cells()
	s.Board.Commit(cells[:], s.Active.Color())
	s.HasActive = false
	s.Pieces++
	g.sound.Play(audio.SoundLand, 1)

	rows := s.Board.FullRows()
	if len(rows) > 0 && g.opts.FlashDuration > 0 {
		s.Phase = PhaseClearing
		s.ClearRows = rows
		s.ClearStart = now
		return
	}
	g.finishClear(now)
}

func (g *Game) finishClear(now time.Time) {
	s := g.state
	rows := Sweep(s.Board)
	s.ClearRows = nil
	if len(rows) > 0 {
		s.Score += ScoreFor(len(rows))
		s.Lines += len(rows)
		g.sound.Play(audio.SoundClear, 1)
		log.Printf("game: cleared rows %v, score %d", rows, s.Score)
	}
	g.spawn(now)
}

func (g *Game) spawn(now time.Time) {
	s := g.state
	s.Phase = PhaseSpawning

	id := s.Queue.Next()
	p, ok := piece.TrySpawn(id, s.Board)
	if !ok {
		s.Status = StatusGameOver
		log.Printf("game: spawn of %v blocked, game over with score %d", id, s.Score)
		return
	}
	s.Active = p
	s.HasActive = true
	s.Phase = PhaseFalling
	s.LastFall = now
}

// Snapshot returns the frame for the current clock reading
func (g *Game) Snapshot() Frame {
	return g.snapshotAt(g.clock.Now())
}

func (g *Game) snapshotAt(now time.Time) Frame {
	s := g.state
	f := Frame{
		Board:  s.Board.Cells(),
		Next:   s.Queue.Peek(),
		Score:  s.Score,
		Lines:  s.Lines,
		Pieces: s.Pieces,
		Phase:  s.Phase,
		Status: s.Status,
	}

	if s.HasActive {
		color := s.Active.Color()
		for _, c := range s.Active.Cells() {
			f.Active = append(f.Active, board.CellColor{Cell: c, Color: color})
		}
	}

	if s.Phase == PhaseClearing {
		f.Highlight = append([]int(nil), s.ClearRows...)
		f.FlashOn = int(now.Sub(s.ClearStart)/g.opts.FlashInterval)%2 == 0
	}
	return f
}
