package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hance08/ledger/internal/constants"
)

// New returns a leveled logger writing to w. An unknown level falls back
// to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.WarnLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: constants.AppName,
		Level:  lvl,
	})
}

// Discard is a logger that drops everything, for tests and callers that
// don't care.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
