package config

import (
	"fmt"

	"github.com/hance08/ledger/internal/constants"
)

type Config struct {
	Ledger     LedgerConfig  `mapstructure:"ledger"`
	UI         UIConfig      `mapstructure:"ui"`
	Display    DisplayConfig `mapstructure:"display"`
	Log        LogConfig     `mapstructure:"log"`
	ConfigPath string        `mapstructure:"-"`
}

type LedgerConfig struct {
	File string `mapstructure:"file"`
}

type UIConfig struct {
	Mode string `mapstructure:"mode"`
}

type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Ledger:  LedgerConfig{File: constants.DefaultFile},
		UI:      UIConfig{Mode: constants.UIModePlain},
		Display: DisplayConfig{CurrencySymbol: constants.DefaultCurrency},
		Log:     LogConfig{Level: constants.DefaultLogLevel},
	}
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"ledger.file":             d.Ledger.File,
		"ui.mode":                 d.UI.Mode,
		"display.currency_symbol": d.Display.CurrencySymbol,
		"log.level":               d.Log.Level,
	}
}

func (c *Config) Validate() error {
	if c.Ledger.File == "" {
		return fmt.Errorf("ledger.file can't be empty")
	}
	switch c.UI.Mode {
	case constants.UIModePlain, constants.UIModeTUI:
	default:
		return fmt.Errorf("invalid ui.mode '%s' (must be %s or %s)", c.UI.Mode, constants.UIModePlain, constants.UIModeTUI)
	}
	return nil
}
