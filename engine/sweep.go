package engine

import (
	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
)

// Sweep clears every full row in one batched compaction and returns the cleared rows
func Sweep(b *board.Board) []int {
	rows := b.FullRows()
	if len(rows) == 0 {
		return nil
	}
	b.ClearAndCompact(rows)
	return rows
}

// ScoreFor returns the score awarded for clearing n rows in a single sweep
func ScoreFor(n int) int {
	return n * constants.ScorePerRow
}
