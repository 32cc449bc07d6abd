package terminal

import "github.com/gdamore/tcell/v2"

// QuitRune is reported for interrupt-style keys so they end the game like 'q'
const QuitRune = 'q'

// keyRune converts a key event into the character the game understands.
// Arrow keys alias the letter controls; Ctrl-C and Escape alias quit.
func keyRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return QuitRune, true
	case tcell.KeyLeft:
		return 'a', true
	case tcell.KeyRight:
		return 'd', true
	case tcell.KeyDown:
		return 's', true
	case tcell.KeyUp:
		return 'w', true
	default:
		return 0, false
	}
}
