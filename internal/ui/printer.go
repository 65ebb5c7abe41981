package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// Printer sends pterm's prefixed messages to a fixed writer so the same
// code serves the terminal and tests.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) Success(format string, a ...any) {
	pterm.Success.WithWriter(p.w).Printfln(format, a...)
}

func (p *Printer) Info(format string, a ...any) {
	pterm.Info.WithWriter(p.w).Printfln(format, a...)
}

func (p *Printer) Warning(format string, a ...any) {
	pterm.Warning.WithWriter(p.w).Printfln(format, a...)
}

func (p *Printer) Error(format string, a ...any) {
	pterm.Error.WithWriter(p.w).Printfln(format, a...)
}
