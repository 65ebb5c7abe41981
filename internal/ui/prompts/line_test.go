package prompts

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/hance08/ledger/internal/model"
	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestLinePrompterChoose(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("2\n"), &out)

	got, err := p.Choose("Pick one:", []string{"Salary", "Business"})
	if err != nil || got != 2 {
		t.Fatalf("expected 2, got %d (err=%v)", got, err)
	}
	for _, want := range []string{"Pick one:", "1. Salary", "2. Business", "Enter choice:"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLinePrompterChooseDoesNotRangeCheck(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(" 7 \n"), io.Discard)
	got, err := p.Choose("Pick:", []string{"a"})
	if err != nil || got != 7 {
		t.Fatalf("expected 7, got %d (err=%v)", got, err)
	}
}

func TestLinePrompterNumberRejectsText(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("abc\n"), io.Discard)
	got, err := p.Number("Year:")
	if !errors.Is(err, ErrNotANumber) || got != 0 {
		t.Fatalf("expected ErrNotANumber and 0, got %d (err=%v)", got, err)
	}
}

func TestLinePrompterText(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("Groceries, weekly\r\n\nlast"), io.Discard)

	for _, want := range []string{"Groceries, weekly", "", "last"} {
		got, err := p.Text("Description:")
		if err != nil || got != want {
			t.Fatalf("expected %q, got %q (err=%v)", want, got, err)
		}
	}
	if _, err := p.Text("Description:"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after input ends, got %v", err)
	}
}

func TestPromptCategoryListsKindVocabulary(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("3\n"), &out)

	got, err := PromptCategory(p, model.Expense)
	if err != nil || got != 3 {
		t.Fatalf("expected 3, got %d (err=%v)", got, err)
	}
	for _, want := range []string{"1. Food", "2. Rent", "3. Travel"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}
