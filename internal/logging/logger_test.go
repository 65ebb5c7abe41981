package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" error ", log.ErrorLevel},
		{"", log.WarnLevel},
		{"chatty", log.WarnLevel},
	}
	for _, tc := range cases {
		l := New(&bytes.Buffer{}, tc.in)
		if l.GetLevel() != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, l.GetLevel())
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "file", "transactions.csv")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "transactions.csv") {
		t.Fatalf("warn message missing: %q", out)
	}
}
