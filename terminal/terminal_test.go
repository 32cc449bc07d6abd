package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(40, 24)
	term := NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Failed to init terminal: %v", err)
	}
	t.Cleanup(term.Fini)
	return term, screen
}

// waitKey polls until a key arrives; the reader goroutine delivers asynchronously
func waitKey(t *testing.T, term *Terminal) rune {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := term.PollKey(); ok {
			return r
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Timed out waiting for key")
	return 0
}

func TestPollKeyEmptyDoesNotBlock(t *testing.T) {
	term, _ := newSimTerminal(t)

	done := make(chan struct{})
	go func() {
		term.PollKey()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PollKey blocked with no pending input")
	}
}

func TestPollKeyDeliversRunesInOrder(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'W', tcell.ModNone)

	if r := waitKey(t, term); r != 'a' {
		t.Errorf("Expected 'a', got %q", r)
	}
	if r := waitKey(t, term); r != 'W' {
		t.Errorf("Expected 'W', got %q", r)
	}
}

func TestSpecialKeysAlias(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want rune
	}{
		{tcell.KeyCtrlC, 'q'},
		{tcell.KeyEscape, 'q'},
		{tcell.KeyLeft, 'a'},
		{tcell.KeyRight, 'd'},
		{tcell.KeyDown, 's'},
		{tcell.KeyUp, 'w'},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, 0, tcell.ModNone)
		r, ok := keyRune(ev)
		if !ok || r != tt.want {
			t.Errorf("key %v: expected %q, got %q ok=%v", tt.key, tt.want, r, ok)
		}
	}

	if _, ok := keyRune(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Error("Expected unmapped key to be ignored")
	}
}

func TestFiniIsIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Repeated Fini panicked: %v", r)
		}
	}()
	term.Fini()
	term.Fini()

	if _, ok := term.PollKey(); ok {
		t.Error("Expected no keys after Fini")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)
	if err := term.Init(); err != nil {
		t.Errorf("Expected second Init to be a no-op, got %v", err)
	}
}

func TestEmergencyResetWritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0} {
		if !bytes.Contains([]byte(out), seq) {
			t.Errorf("Expected output to contain %q", seq)
		}
	}
}

func TestInitStartsReaderThroughSpawner(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(40, 24)
	term := NewWithScreen(screen)

	var spawned int
	term.SetSpawner(func(fn func()) {
		spawned++
		go fn()
	})
	if err := term.Init(); err != nil {
		t.Fatalf("Failed to init terminal: %v", err)
	}
	t.Cleanup(term.Fini)

	if spawned != 1 {
		t.Fatalf("Expected reader started once through spawner, got %d", spawned)
	}

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	if r := waitKey(t, term); r != 's' {
		t.Errorf("Expected 's' from spawned reader, got %q", r)
	}
}

func TestSetSpawnerIgnoresNil(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)
	term.SetSpawner(nil)
	if err := term.Init(); err != nil {
		t.Fatalf("Failed to init terminal: %v", err)
	}
	t.Cleanup(term.Fini)

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	if r := waitKey(t, term); r != 'd' {
		t.Errorf("Expected default reader to deliver 'd', got %q", r)
	}
}
