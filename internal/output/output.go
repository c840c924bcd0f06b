// Package output renders CLI progress messages and errors, and maps errors
// to process exit codes.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// DryRunPrefix marks messages describing changes that were not made.
const DryRunPrefix = "DRY-RUN: "

// Printer writes progress messages to one writer and errors to another.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	DryRun  lipgloss.Style
}

// NewPrinter creates a new Printer. Colors are enabled only when isTTY is true.
func NewPrinter(writer io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		DryRun:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),           // Magenta
	}

	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.DryRun = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// Message prints one progress message, prefixed with DryRunPrefix when
// dryRun is set.
func (p *Printer) Message(msg string, dryRun bool) {
	if dryRun {
		mustWrite(fmt.Fprintf(p.w, "%s%s\n", p.styles.DryRun.Render(DryRunPrefix), msg))
		return
	}
	mustWrite(fmt.Fprintln(p.w, msg))
}

// Sink returns a function that prints each message with Message.
func (p *Printer) Sink(dryRun bool) func(string) {
	return func(msg string) {
		p.Message(msg, dryRun)
	}
}

// Error outputs a styled error message to the error writer.
func (p *Printer) Error(err error) {
	msg := err.Error()
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		msg = exitErr.Message
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), msg))
}

// Warn outputs a warning message to the error writer.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// mustWrite panics if a write operation fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
