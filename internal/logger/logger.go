// Package logger writes user-facing status output with quiet and debug levels.
package logger

import (
	"fmt"
	"io"
)

type Logger struct {
	out   io.Writer
	err   io.Writer
	quiet bool
	debug bool
}

func New(out io.Writer, err io.Writer, quiet bool, debug bool) *Logger {
	return &Logger{
		out:   out,
		err:   err,
		quiet: quiet,
		debug: debug,
	}
}

// Log writes message to stdout unless the logger is quiet. forceShow bypasses quiet mode;
// use it for lines the user must always see, such as failures and the final summary.
func (logger *Logger) Log(message string, forceShow bool) {
	if logger.quiet && !forceShow && !logger.debug {
		return
	}
	writeLine(logger.out, message)
}

func (logger *Logger) Debug(message string) {
	if !logger.debug {
		return
	}
	writeLine(logger.out, message)
}

func (logger *Logger) Debugf(format string, args ...any) {
	logger.Debug(fmt.Sprintf(format, args...))
}

// Error writes to stderr regardless of quiet mode.
func (logger *Logger) Error(message string) {
	writeLine(logger.err, message)
}

func writeLine(w io.Writer, message string) {
	if _, err := fmt.Fprintln(w, message); err != nil {
		return
	}
}
