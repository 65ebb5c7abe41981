package errhandler

import (
	"errors"
	"io"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancellation reports whether err means the user backed out of a prompt.
func IsCancellation(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// Report prints err for the user and returns the process exit code.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if IsCancellation(err) {
		pterm.Warning.WithWriter(w).Println("Operation Cancelled")
		return 0
	}

	pterm.Error.WithWriter(w).Println(capitalize(err.Error()))
	return 1
}

func HandleError(err error) {
	os.Exit(Report(os.Stderr, err))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
