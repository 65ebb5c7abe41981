package errhandler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestReport(t *testing.T) {
	cases := []struct {
		err  error
		code int
		want string
	}{
		{nil, 0, ""},
		{terminal.InterruptErr, 0, "Operation Cancelled"},
		{fmt.Errorf("prompt: %w", huh.ErrUserAborted), 0, "Operation Cancelled"},
		{errors.New("invalid category 'Food' for Income"), 1, "Invalid category 'Food' for Income"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if code := Report(&buf, tc.err); code != tc.code {
			t.Fatalf("%v: expected exit code %d, got %d", tc.err, tc.code, code)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Fatalf("%v: output missing %q: %s", tc.err, tc.want, buf.String())
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("élan"); got != "Élan" {
		t.Fatalf("unexpected %q", got)
	}
	if capitalize("") != "" {
		t.Fatalf("empty stays empty")
	}
}
