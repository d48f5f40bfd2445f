//go:build !unix

package terminal

// resetTerminalMode is a no-op where termios is unavailable
func resetTerminalMode() {}
