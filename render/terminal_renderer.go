// Package render draws engine frames onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/shape"
)

// Layout, in screen cells. Each well cell is two columns wide.
const (
	cellWidth = 2
	wellX     = 2
	wellY     = 1
	panelGap  = 3
)

// previewStride spaces the side-by-side previews; the widest shape spans four cells
const previewStride = 4*cellWidth + 1

const (
	blockRune = '█'
	emptyRune = '▒'
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Draw renders the entire frame
func (r *TerminalRenderer) Draw(f engine.Frame) {
	r.screen.Clear()
	r.fill()

	r.drawWell(f)
	r.drawPanel(f)
	if f.Status == engine.StatusGameOver {
		r.drawBanner(" GAME OVER ", RgbGameOver)
	}

	r.screen.Show()
}

// WellOrigin returns the screen position of well cell (0,0)
func WellOrigin() (int, int) {
	return wellX + 1, wellY + 1
}

func (r *TerminalRenderer) fill() {
	w, h := r.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.base)
		}
	}
}

func (r *TerminalRenderer) drawWell(f engine.Frame) {
	border := r.base.Foreground(RgbBorder)
	innerW := constants.BoardWidth * cellWidth
	right := wellX + innerW + 1
	bottom := wellY + constants.BoardHeight + 1

	for x := wellX + 1; x < right; x++ {
		r.screen.SetContent(x, wellY, '─', nil, border)
		r.screen.SetContent(x, bottom, '─', nil, border)
	}
	for y := wellY + 1; y < bottom; y++ {
		r.screen.SetContent(wellX, y, '│', nil, border)
		r.screen.SetContent(right, y, '│', nil, border)
	}
	r.screen.SetContent(wellX, wellY, '┌', nil, border)
	r.screen.SetContent(right, wellY, '┐', nil, border)
	r.screen.SetContent(wellX, bottom, '└', nil, border)
	r.screen.SetContent(right, bottom, '┘', nil, border)

	empty := r.base.Foreground(RgbWellEmpty)
	for y := 0; y < constants.BoardHeight; y++ {
		for x := 0; x < constants.BoardWidth; x++ {
			r.setCell(x, y, emptyRune, empty)
		}
	}

	flashing := make(map[int]bool, len(f.Highlight))
	if f.FlashOn {
		for _, y := range f.Highlight {
			flashing[y] = true
		}
	}

	for _, cc := range f.Board {
		color := cc.Color
		if flashing[cc.Cell.Y] {
			color = flashColor(color)
		}
		r.setCell(cc.Cell.X, cc.Cell.Y, blockRune, r.base.Foreground(color))
	}
	for _, cc := range f.Active {
		r.setCell(cc.Cell.X, cc.Cell.Y, blockRune, r.base.Foreground(cc.Color))
	}
}

// setCell paints one well cell, skipping anything outside the well
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= constants.BoardWidth || y < 0 || y >= constants.BoardHeight {
		return
	}
	ox, oy := WellOrigin()
	sx := ox + x*cellWidth
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(sx+i, oy+y, ch, nil, style)
	}
}

// PanelX returns the column where the side panel starts
func PanelX() int {
	return wellX + constants.BoardWidth*cellWidth + 2 + panelGap
}

func (r *TerminalRenderer) drawPanel(f engine.Frame) {
	x := PanelX()
	label := r.base.Foreground(RgbLabel)
	value := r.base.Foreground(RgbValue).Bold(true)

	y := wellY + 1
	r.drawText(x, y, "NEXT", label)
	y += 2
	for i, id := range f.Next {
		r.drawPreview(x+i*previewStride, y, id)
	}

	y += 5
	for _, stat := range []struct {
		name string
		val  int
	}{
		{"SCORE", f.Score},
		{"LINES", f.Lines},
		{"PIECES", f.Pieces},
	} {
		r.drawText(x, y, stat.name, label)
		r.drawText(x, y+1, fmt.Sprintf("%d", stat.val), value)
		y += 3
	}

	help := r.base.Foreground(RgbHelp)
	for _, line := range []string{"a/d  move", "w    rotate", "s    drop", "q    quit"} {
		r.drawText(x, y, line, help)
		y++
	}
}

// drawPreview draws a shape in its spawn orientation
func (r *TerminalRenderer) drawPreview(x, y int, id shape.ID) {
	style := r.base.Foreground(shape.Color(id))
	for _, off := range shape.Offsets(id, 0) {
		sx := x + off.DX*cellWidth
		for i := 0; i < cellWidth; i++ {
			r.screen.SetContent(sx+i, y+off.DY, blockRune, nil, style)
		}
	}
}

// drawBanner centers text over the well
func (r *TerminalRenderer) drawBanner(text string, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(bg).Bold(true)
	ox, oy := WellOrigin()
	innerW := constants.BoardWidth * cellWidth
	x := ox + (innerW-len(text))/2
	y := oy + constants.BoardHeight/2
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
