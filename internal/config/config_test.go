package config

import "testing"

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if cfg.Ledger.File != "transactions.csv" {
		t.Fatalf("unexpected default file %q", cfg.Ledger.File)
	}
	if cfg.UI.Mode != "plain" || cfg.Display.CurrencySymbol != "$" || cfg.Log.Level != "warn" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestDefaultsMatchNewDefault(t *testing.T) {
	d := Defaults()
	cfg := NewDefault()
	if d["ledger.file"] != cfg.Ledger.File || d["ui.mode"] != cfg.UI.Mode ||
		d["display.currency_symbol"] != cfg.Display.CurrencySymbol || d["log.level"] != cfg.Log.Level {
		t.Fatalf("Defaults() out of sync with NewDefault(): %v", d)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"tui mode", func(c *Config) { c.UI.Mode = "tui" }, true},
		{"unknown mode", func(c *Config) { c.UI.Mode = "gui" }, false},
		{"empty file", func(c *Config) { c.Ledger.File = "" }, false},
	}
	for _, tc := range cases {
		cfg := NewDefault()
		tc.mutate(cfg)
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: expected ok, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
