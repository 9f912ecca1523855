// Package logger prints the tool's console progress lines.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
)

// SetOutput redirects log lines and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// SetColors enables or disables ANSI colours for every helper in this package.
func SetColors(enabled bool) {
	if enabled {
		text.EnableColors()
		return
	}
	text.DisableColors()
}

// Info logs a message to the console with the "[INFO]" tag.
func Info(format string, args ...any) {
	write(text.FgBlue.Sprint("INFO"), format, args...)
}

// Warn logs a message to the console with the "[WARN]" tag.
func Warn(format string, args ...any) {
	write(text.FgYellow.Sprint("WARN"), format, args...)
}

func write(tag, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "[%s]: %s\n", tag, fmt.Sprintf(format, args...))
}

// Path highlights a file or directory name.
func Path(s string) string { return text.FgHiYellow.Sprint(s) }

// Old highlights the value being replaced.
func Old(s string) string { return text.FgHiRed.Sprint(s) }

// New highlights the replacement value.
func New(s string) string { return text.FgHiGreen.Sprint(s) }

// Current highlights a version that is left unchanged.
func Current(s string) string { return text.FgHiMagenta.Sprint(s) }
