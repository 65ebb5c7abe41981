package views

import (
	"errors"

	"github.com/hance08/ledger/internal/ledgerfile"
	"github.com/hance08/ledger/internal/ui"
)

// RenderLoadResult reports every skipped line, then the outcome of the load.
func RenderLoadResult(p *ui.Printer, path string, report ledgerfile.LoadReport, err error) {
	for _, skipped := range report.Skipped {
		if skipped.Malformed() {
			p.Warning("Skipping invalid line: %s", skipped.Text)
		} else {
			p.Warning("Error parsing line: %s", skipped.Text)
		}
	}

	switch {
	case err == nil:
		p.Success("Loaded from %s", path)
	case errors.Is(err, ledgerfile.ErrFileNotFound):
		p.Error("File not found!")
	default:
		p.Error("Error loading file!")
	}
}

func RenderSaveResult(p *ui.Printer, path string, err error) {
	if err != nil {
		p.Error("Error saving file!")
		return
	}
	p.Success("Saved to %s", path)
}
