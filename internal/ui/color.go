// Package ui prints rosctl status lines to the console.
//
// Progress and result lines go to the standard writer. Errors and warnings
// go to the error writer so they survive redirection of command output.
package ui

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
	Cyan   = color.New(color.FgCyan)
)

var (
	mu     sync.Mutex
	out    io.Writer = color.Output
	errOut io.Writer = color.Error
)

// SetOutput redirects status lines to stdout and errors to stderr.
// The returned func restores the previous writers.
func SetOutput(stdout, stderr io.Writer) (restore func()) {
	mu.Lock()
	prevOut, prevErr := out, errOut
	out, errOut = stdout, stderr
	mu.Unlock()

	return func() {
		mu.Lock()
		out, errOut = prevOut, prevErr
		mu.Unlock()
	}
}

func emit(toErr bool, c *color.Color, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	w := out
	if toErr {
		w = errOut
	}
	c.Fprintf(w, prefix+format+"\n", args...)
}

// Success reports a completed template or upload operation.
func Success(format string, args ...any) {
	emit(false, Green, "✓ ", format, args...)
}

// Info prints a plain blue line.
func Info(format string, args ...any) {
	emit(false, Blue, "", format, args...)
}

// Template reports a change to the template file.
func Template(format string, args ...any) {
	emit(false, Cyan, "📄 ", format, args...)
}

// Upload reports a finished upload.
func Upload(format string, args ...any) {
	emit(false, Green, "📦 ", format, args...)
}

// Warning prints to the error writer.
func Warning(format string, args ...any) {
	emit(true, Yellow, "⚠ ", format, args...)
}

// Error prints to the error writer.
func Error(format string, args ...any) {
	emit(true, Red, "✗ ", format, args...)
}
