// Package piece implements the falling piece: its placement, movement and
// rotation rules, validated against the settled board.
package piece

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/shape"
)

// Piece is the active tetromino. It is a value; every operation returns a new piece.
type Piece struct {
	Shape       shape.ID
	Anchor      core.Cell
	Orientation int
}

// Cells returns the absolute cells the piece covers
func (p Piece) Cells() [constants.CellsPerPiece]core.Cell {
	return CellsFor(p.Anchor, p.Shape, p.Orientation)
}

// Color returns the display color of the piece's shape
func (p Piece) Color() tcell.Color {
	return shape.Color(p.Shape)
}

// CellsFor returns anchor + catalog offsets for the given shape and orientation
func CellsFor(anchor core.Cell, id shape.ID, orientation int) [constants.CellsPerPiece]core.Cell {
	var cells [constants.CellsPerPiece]core.Cell
	for i, off := range shape.Offsets(id, orientation) {
		cells[i] = anchor.Add(off.DX, off.DY)
	}
	return cells
}

// CanPlace reports whether every cell lies inside the well and is unoccupied
func CanPlace(cells []core.Cell, b *board.Board) bool {
	for _, c := range cells {
		if !c.InBounds(constants.BoardWidth, constants.BoardHeight) {
			return false
		}
		if b.IsOccupied(c) {
			return false
		}
	}
	return true
}

// TrySpawn places a new piece at the fixed spawn anchor.
// ok is false when the spawn cells are blocked, which ends the game.
func TrySpawn(id shape.ID, b *board.Board) (p Piece, ok bool) {
	p = Piece{
		Shape:  id,
		Anchor: core.Cell{X: constants.SpawnX, Y: constants.SpawnY},
	}
	cells := p.Cells()
	return p, CanPlace(cells[:], b)
}

// TryMove translates the piece by (dx, dy); a rejected move returns p unchanged
func TryMove(p Piece, dx, dy int, b *board.Board) (Piece, bool) {
	next := p
	next.Anchor = p.Anchor.Add(dx, dy)
	cells := next.Cells()
	if !CanPlace(cells[:], b) {
		return p, false
	}
	return next, true
}

// TryRotate advances to the next orientation at the same anchor, without kicks
func TryRotate(p Piece, b *board.Board) (Piece, bool) {
	next := p
	next.Orientation = (p.Orientation + 1) % shape.Count(p.Shape)
	cells := next.Cells()
	if !CanPlace(cells[:], b) {
		return p, false
	}
	return next, true
}

// TryFall moves the piece down one row. landed is true when the move was
// rejected; the caller then commits the unchanged piece.
func TryFall(p Piece, b *board.Board) (next Piece, landed bool) {
	next, ok := TryMove(p, 0, 1, b)
	return next, !ok
}
