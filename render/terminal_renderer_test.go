package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/shape"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 26)
	t.Cleanup(screen.Fini)
	return screen
}

// wellCell returns the rune and foreground drawn for well cell (x, y)
func wellCell(screen tcell.Screen, x, y int) (rune, tcell.Color) {
	ox, oy := WellOrigin()
	mainc, _, style, _ := screen.GetContent(ox+x*cellWidth, oy+y)
	fg, _, _ := style.Decompose()
	return mainc, fg
}

func screenRow(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = screenRow(screen, y)
	}
	return strings.Join(rows, "\n")
}

func baseFrame() engine.Frame {
	return engine.Frame{
		Board: []board.CellColor{
			{Cell: core.Cell{X: 0, Y: 19}, Color: tcell.ColorRed},
		},
		Active: []board.CellColor{
			{Cell: core.Cell{X: 4, Y: 0}, Color: tcell.ColorAqua},
		},
		Next:   []shape.ID{shape.O, shape.T, shape.I},
		Score:  300,
		Lines:  3,
		Pieces: 12,
		Status: engine.StatusPlaying,
	}
}

func TestDrawSettledAndActiveCells(t *testing.T) {
	screen := newTestScreen(t)
	NewTerminalRenderer(screen).Draw(baseFrame())

	ch, fg := wellCell(screen, 0, 19)
	if ch != blockRune || fg != tcell.ColorRed {
		t.Errorf("Expected red block at (0,19), got %q %v", ch, fg)
	}

	ch, fg = wellCell(screen, 4, 0)
	if ch != blockRune || fg != tcell.ColorAqua {
		t.Errorf("Expected aqua active block at (4,0), got %q %v", ch, fg)
	}

	ch, _ = wellCell(screen, 5, 5)
	if ch != emptyRune {
		t.Errorf("Expected empty cell rune, got %q", ch)
	}
}

func TestDrawCellsAreDoubleWidth(t *testing.T) {
	screen := newTestScreen(t)
	NewTerminalRenderer(screen).Draw(baseFrame())

	ox, oy := WellOrigin()
	mainc, _, _, _ := screen.GetContent(ox+1, oy+19)
	if mainc != blockRune {
		t.Errorf("Expected second column of cell to be filled, got %q", mainc)
	}
}

func TestDrawBorder(t *testing.T) {
	screen := newTestScreen(t)
	NewTerminalRenderer(screen).Draw(baseFrame())

	ox, oy := WellOrigin()
	mainc, _, _, _ := screen.GetContent(ox-1, oy)
	if mainc != '│' {
		t.Errorf("Expected left wall, got %q", mainc)
	}
	mainc, _, _, _ = screen.GetContent(ox-1, oy-1)
	if mainc != '┌' {
		t.Errorf("Expected top-left corner, got %q", mainc)
	}
}

// TestDrawFlashPhase verifies highlighted rows brighten only in the lit phase
func TestDrawFlashPhase(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	f := baseFrame()
	f.Highlight = []int{19}
	f.FlashOn = true
	r.Draw(f)

	_, fg := wellCell(screen, 0, 19)
	if fg != flashColor(tcell.ColorRed) {
		t.Errorf("Expected flashed color, got %v", fg)
	}

	f.FlashOn = false
	r.Draw(f)
	_, fg = wellCell(screen, 0, 19)
	if fg != tcell.ColorRed {
		t.Errorf("Expected original color in dark phase, got %v", fg)
	}
}

func TestDrawPanel(t *testing.T) {
	screen := newTestScreen(t)
	NewTerminalRenderer(screen).Draw(baseFrame())

	text := screenText(screen)
	for _, want := range []string{"NEXT", "SCORE", "300", "LINES", "PIECES", "12", "q    quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected panel to contain %q", want)
		}
	}
	if strings.Contains(text, "GAME OVER") {
		t.Error("Expected no banner while playing")
	}
}

func TestDrawNextPreview(t *testing.T) {
	screen := newTestScreen(t)
	NewTerminalRenderer(screen).Draw(baseFrame())

	// First preview is the O piece, anchored at the panel origin
	mainc, _, style, _ := screen.GetContent(PanelX(), wellY+3)
	fg, _, _ := style.Decompose()
	if mainc != blockRune || fg != shape.Color(shape.O) {
		t.Errorf("Expected O preview block, got %q %v", mainc, fg)
	}

	// Third preview is the vertical I, four rows tall
	mainc, _, style, _ = screen.GetContent(PanelX()+2*previewStride, wellY+3+3)
	fg, _, _ = style.Decompose()
	if mainc != blockRune || fg != shape.Color(shape.I) {
		t.Errorf("Expected I preview block, got %q %v", mainc, fg)
	}
}

func TestDrawGameOverBanner(t *testing.T) {
	screen := newTestScreen(t)
	f := baseFrame()
	f.Status = engine.StatusGameOver
	NewTerminalRenderer(screen).Draw(f)

	if !strings.Contains(screenText(screen), "GAME OVER") {
		t.Error("Expected game over banner")
	}
}

func TestFlashColorOfNamedColor(t *testing.T) {
	got := toRGB(flashColor(tcell.ColorRed))
	if got.R < 250 || got.G < 150 || got.B < 150 {
		t.Errorf("Expected red pushed toward white, got %+v", got)
	}
	if toRGB(tcell.ColorDefault) != core.RGBWhite {
		t.Error("Expected default color to map to white")
	}
}
