package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// User-facing output functions with emoji prefixes.
// These write to stdout/stderr directly for console output,
// separate from the structured debug logging. Prefixes are colored only
// when the stream is a terminal.

var (
	outMu  sync.Mutex
	stdout = newStream(os.Stdout)
	stderr = newStream(os.Stderr)
)

var (
	infoColor    = lipgloss.Color("39")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
)

type stream struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

func newStream(w io.Writer) *stream {
	return &stream{w: w, renderer: lipgloss.NewRenderer(w)}
}

func (s *stream) prefix(icon string, color lipgloss.Color) string {
	return s.renderer.NewStyle().Foreground(color).Bold(true).Render(icon) + " "
}

// SetUserOutput redirects user-facing output. A nil writer restores the
// corresponding standard stream. It returns a function that restores the
// previous writers.
func SetUserOutput(out, errOut io.Writer) (restore func()) {
	outMu.Lock()
	defer outMu.Unlock()

	prevOut, prevErr := stdout, stderr
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = newStream(out), newStream(errOut)

	return func() {
		outMu.Lock()
		defer outMu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

func userf(toErr bool, icon string, color lipgloss.Color, format string, args ...interface{}) {
	outMu.Lock()
	defer outMu.Unlock()
	s := stdout
	if toErr {
		s = stderr
	}
	fmt.Fprintf(s.w, s.prefix(icon, color)+format+"\n", args...)
}

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	userf(false, "ℹ", infoColor, format, args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	userf(false, "✓", successColor, format, args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	userf(true, "⚠", warningColor, format, args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	userf(true, "✗", errorColor, format, args...)
}

// UserText prints text to stdout without a status indicator, exactly as given.
func UserText(text string) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprint(stdout.w, text)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		fmt.Fprintln(stdout.w)
	}
}
