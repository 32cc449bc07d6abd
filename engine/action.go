package engine

import "unicode"

// Action is a player command decoded from a key
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionRotate
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:     "none",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionSoftDrop: "soft-drop",
	ActionRotate:   "rotate",
	ActionQuit:     "quit",
}

func (a Action) String() string {
	return actionNames[a]
}

// ActionForRune maps a key to an action, case-insensitively; unknown keys yield ActionNone
func ActionForRune(r rune) Action {
	switch unicode.ToLower(r) {
	case 'a':
		return ActionLeft
	case 'd':
		return ActionRight
	case 's':
		return ActionSoftDrop
	case 'w':
		return ActionRotate
	case 'q':
		return ActionQuit
	default:
		return ActionNone
	}
}
