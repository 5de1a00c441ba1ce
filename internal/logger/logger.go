package logger

import "os"

type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// NopLogger discards everything. Used when a spinner owns the terminal
// or when tests need quiet output.
type NopLogger struct{}

func (n *NopLogger) Logf(format string, args ...interface{}) {}
func (n *NopLogger) Log(msg string)                          {}

// IsInteractive reports whether stdout is attached to a terminal.
// Used to decide when to use interactive UI elements like spinners.
func IsInteractive() bool {
	// If stdout is a pipe or regular file (common in tests/CI), avoid
	// interactive UI.
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
