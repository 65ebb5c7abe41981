package views

import (
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	LedgerPath     string
	LedgerExists   bool // true = Found, false = Not Found
	UIMode         string
	CurrencySymbol string
	LogLevel       string
	AppDataDir     string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	ledgerStatus := pterm.Green("Found")
	if !data.LedgerExists {
		ledgerStatus = pterm.Red("Not Found (Will be created on save)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Ledger File", data.LedgerPath},
		{"Ledger Status", ledgerStatus},
		{"UI Mode", data.UIMode},
		{"Currency Symbol", data.CurrencySymbol},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithWriter(w).WithData(tableData).Render()
}
