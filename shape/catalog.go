// Package shape holds the static tetromino catalog: rotation states as
// relative offsets plus a display color per shape.
package shape

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ID identifies one of the seven tetrominoes
type ID int

const (
	O ID = iota + 1
	I
	T
	S
	Z
	J
	L
)

// Offset is a cell position relative to a piece anchor
type Offset struct {
	DX, DY int
}

// State is one rotation of a shape
type State [4]Offset

type definition struct {
	name   string
	color  tcell.Color
	states []State
}

var catalog = map[ID]definition{
	O: {"O", tcell.ColorYellow, []State{
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	}},
	I: {"I", tcell.ColorAqua, []State{
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	}},
	T: {"T", tcell.ColorFuchsia, []State{
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
	}},
	S: {"S", tcell.ColorLime, []State{
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	}},
	Z: {"Z", tcell.ColorRed, []State{
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	}},
	J: {"J", tcell.ColorBlue, []State{
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	}},
	L: {"L", tcell.ColorOrange, []State{
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	}},
}

// all lists the catalog in identifier order
var all = []ID{O, I, T, S, Z, J, L}

// All returns every shape identifier in catalog order
func All() []ID {
	out := make([]ID, len(all))
	copy(out, all)
	return out
}

// States returns the ordered rotation states of a shape
func States(id ID) []State {
	return lookup(id).states
}

// Count returns the number of rotation states of a shape
func Count(id ID) int {
	return len(lookup(id).states)
}

// Offsets returns the offsets for an orientation; the index wraps in both directions
func Offsets(id ID, orientation int) State {
	states := lookup(id).states
	n := len(states)
	return states[((orientation%n)+n)%n]
}

// Color returns the display color of a shape
func Color(id ID) tcell.Color {
	return lookup(id).color
}

func (id ID) String() string {
	if d, ok := catalog[id]; ok {
		return d.name
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// lookup panics on identifiers outside the catalog; callers only draw from All
func lookup(id ID) definition {
	d, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("shape: unknown id %d", int(id)))
	}
	return d
}
