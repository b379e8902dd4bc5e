package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// PrettyLogger writes short, styled, user-facing lines. It never carries
// raw diagnostics; those belong in the structured logger.
type PrettyLogger struct {
	writer io.Writer
	styles PrettyStyles
}

// PrettyStyles contains lipgloss styles for different message kinds
type PrettyStyles struct {
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
}

// DefaultPrettyStyles returns the default styling for pretty output
func DefaultPrettyStyles() PrettyStyles {
	return PrettyStyles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),            // Blue
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),            // Yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
	}
}

// NewPrettyLogger creates a pretty logger writing to stderr
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{
		writer: os.Stderr,
		styles: DefaultPrettyStyles(),
	}
}

// WithWriter sets a custom writer for pretty output. Styling is dropped
// when the writer is not a color-capable terminal.
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	if termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii {
		p.styles = PrettyStyles{}
	}
	return p
}

// Success prints a title and optional message with a checkmark
func (p *PrettyLogger) Success(title, message string) {
	p.line(p.styles.Success, "✓", title, message)
}

// Failure prints a title and optional message with a cross
func (p *PrettyLogger) Failure(title, message string) {
	p.line(p.styles.Error, "✗", title, message)
}

// Warn prints a warning line
func (p *PrettyLogger) Warn(title, message string) {
	p.line(p.styles.Warning, "⚠", title, message)
}

// Info prints an informational line
func (p *PrettyLogger) Info(message string) {
	fmt.Fprintln(p.writer, p.styles.Info.Render(message))
}

// Field prints a key-value pair
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s: %s\n",
		p.styles.Key.Render(key),
		p.styles.Value.Render(fmt.Sprint(value)))
}

// Path prints a file path with a label
func (p *PrettyLogger) Path(label string, path string) {
	fmt.Fprintf(p.writer, "%s: %s\n",
		p.styles.Key.Render(label),
		p.styles.Path.Render(path))
}

func (p *PrettyLogger) line(style lipgloss.Style, icon, title, message string) {
	fmt.Fprintf(p.writer, "%s %s", style.Render(icon), style.Render(title))
	if message != "" {
		fmt.Fprintf(p.writer, " %s", p.styles.Muted.Render(message))
	}
	fmt.Fprintln(p.writer)
}
