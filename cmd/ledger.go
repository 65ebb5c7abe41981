package cmd

import (
	"errors"
	"fmt"

	"github.com/hance08/ledger/internal/ledgerfile"
	"github.com/hance08/ledger/internal/ui"
)

// loadLedger fills the session from the ledger file. A missing file is an
// empty ledger. Skipped lines are reported as warnings.
func (cc *cliContext) loadLedger(p *ui.Printer) (ledgerfile.LoadReport, error) {
	report, err := cc.app.Service.File.Load()
	for _, skipped := range report.Skipped {
		p.Warning("Skipping line %d: %s", skipped.Line, skipped.Text)
	}
	if errors.Is(err, ledgerfile.ErrFileNotFound) {
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("failed to load ledger: %w", err)
	}
	return report, nil
}
