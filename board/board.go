// Package board holds the settled portion of the well: which cells are
// occupied and the color each one was committed with.
package board

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
)

const (
	width  = constants.BoardWidth
	height = constants.BoardHeight
)

// CellColor pairs an occupied cell with its display color
type CellColor struct {
	Cell  core.Cell
	Color tcell.Color
}

// Board is the settled cell grid. A cell is occupied iff it carries a color,
// so the occupied set and the color mapping cannot diverge.
type Board struct {
	cells *intmap.Map[int, tcell.Color]
}

// New returns an empty board
func New() *Board {
	return &Board{cells: intmap.New[int, tcell.Color](width * height)}
}

func key(c core.Cell) int {
	return c.Y*width + c.X
}

func cellOf(k int) core.Cell {
	return core.Cell{X: k % width, Y: k / width}
}

// IsOccupied reports whether a settled cell exists at c; out-of-range cells are never occupied
func (b *Board) IsOccupied(c core.Cell) bool {
	if !c.InBounds(width, height) {
		return false
	}
	return b.cells.Has(key(c))
}

// ColorAt returns the color committed at c
func (b *Board) ColorAt(c core.Cell) (tcell.Color, bool) {
	if !c.InBounds(width, height) {
		return tcell.ColorDefault, false
	}
	return b.cells.Get(key(c))
}

// Len returns the number of occupied cells
func (b *Board) Len() int {
	return b.cells.Len()
}

// Commit marks every cell occupied with color.
// Callers validate placement first; committing onto an occupied or
// out-of-range cell is a programming error and panics.
func (b *Board) Commit(cells []core.Cell, color tcell.Color) {
	for _, c := range cells {
		if !c.InBounds(width, height) {
			panic(fmt.Sprintf("board: commit outside well at (%d,%d)", c.X, c.Y))
		}
		if b.cells.Has(key(c)) {
			panic(fmt.Sprintf("board: commit onto occupied cell (%d,%d)", c.X, c.Y))
		}
	}
	for _, c := range cells {
		b.cells.Put(key(c), color)
	}
}

// FullRows returns the indices of completely occupied rows in ascending order
func (b *Board) FullRows() []int {
	var counts [height]int
	b.cells.ForEach(func(k int, _ tcell.Color) bool {
		counts[k/width]++
		return true
	})

	var rows []int
	for y, n := range counts {
		if n == width {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearAndCompact removes the given rows and drops every remaining cell by
// the number of removed rows strictly below it, in one batched pass.
func (b *Board) ClearAndCompact(rows []int) {
	var cleared [height]bool
	hit := false
	for _, y := range rows {
		if y >= 0 && y < height {
			cleared[y] = true
			hit = true
		}
	}
	if !hit {
		return
	}

	// shift[y] counts cleared rows with index greater than y
	var shift [height]int
	below := 0
	for y := height - 1; y >= 0; y-- {
		shift[y] = below
		if cleared[y] {
			below++
		}
	}

	next := intmap.New[int, tcell.Color](width * height)
	b.cells.ForEach(func(k int, color tcell.Color) bool {
		c := cellOf(k)
		if cleared[c.Y] {
			return true
		}
		next.Put(key(c.Add(0, shift[c.Y])), color)
		return true
	})
	b.cells = next
}

// Cells returns a row-major snapshot of all occupied cells
func (b *Board) Cells() []CellColor {
	out := make([]CellColor, 0, b.cells.Len())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := core.Cell{X: x, Y: y}
			if color, ok := b.cells.Get(key(c)); ok {
				out = append(out, CellColor{Cell: c, Color: color})
			}
		}
	}
	return out
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	out := New()
	b.cells.ForEach(func(k int, color tcell.Color) bool {
		out.cells.Put(k, color)
		return true
	})
	return out
}
