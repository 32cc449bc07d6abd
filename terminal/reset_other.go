//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls are not wired; tcell's Fini covers normal exits
func resetTerminalMode() {}
