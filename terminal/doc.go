// Package terminal adapts a tcell screen to the game's narrow input needs:
// scoped raw-mode acquisition, a non-blocking single-key poll, and a
// best-effort emergency reset for crash paths.
package terminal
