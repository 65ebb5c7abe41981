package cmd

import (
	"os"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cc  *cliContext
	cmd *cobra.Command
}

func NewInfoCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, ledger file path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cc:  cc,
				cmd: cmd,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.cc.cfg

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	ledgerPath := r.cc.app.Service.File.Path()
	ledgerExists := false
	if _, err := os.Stat(ledgerPath); err == nil {
		ledgerExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		LedgerPath:     ledgerPath,
		LedgerExists:   ledgerExists,
		UIMode:         cfg.UI.Mode,
		CurrencySymbol: cfg.Display.CurrencySymbol,
		LogLevel:       cfg.Log.Level,
		AppDataDir:     appDataDirOrUnknown(),
	}

	ui.PrintL1Title(r.cmd.OutOrStdout(), "ledger")
	ui.PrintSeparator(r.cmd.OutOrStdout())
	return views.RenderSystemInfo(r.cmd.OutOrStdout(), items)
}

func appDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
