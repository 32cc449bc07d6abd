package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// keyBufferSize bounds queued keystrokes; extra keys are dropped rather than blocking the reader
const keyBufferSize = 64

// ErrNotTerminal is returned when the game is started without an interactive terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal owns the tcell screen for the lifetime of a game
type Terminal struct {
	screen tcell.Screen
	keys   chan rune
	done   chan struct{}
	spawn  func(func())

	initOnce sync.Once
	finiOnce sync.Once
	initErr  error
}

// New creates a terminal over the process tty
func New() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, typically a simulation screen in tests
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		keys:   make(chan rune, keyBufferSize),
		done:   make(chan struct{}),
		spawn:  func(fn func()) { go fn() },
	}
}

// SetSpawner replaces how the event reader goroutine is started, e.g. with a
// panic-recovering launcher. Must be called before Init.
func (t *Terminal) SetSpawner(spawn func(func())) {
	if spawn != nil {
		t.spawn = spawn
	}
}

// Init switches the terminal into raw mode and starts the event reader.
// Every successful Init must be paired with Fini.
func (t *Terminal) Init() error {
	t.initOnce.Do(func() {
		if err := t.screen.Init(); err != nil {
			t.initErr = fmt.Errorf("init screen: %w", err)
			return
		}
		t.screen.HideCursor()
		t.screen.Clear()
		t.spawn(t.readEvents)
	})
	return t.initErr
}

// Fini restores the terminal; safe to call more than once and from crash handlers
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Screen exposes the underlying screen to the renderer
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// PollKey returns one pending key, or false immediately when none is waiting
func (t *Terminal) PollKey() (rune, bool) {
	select {
	case r := <-t.keys:
		return r, true
	default:
		return 0, false
	}
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			r, ok := keyRune(ev)
			if !ok {
				continue
			}
			select {
			case t.keys <- r:
			case <-t.done:
				return
			default:
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// EmergencyReset writes restore sequences directly; used when no screen is available to Fini
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
