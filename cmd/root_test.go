package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func runLedger(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	return filepath.Join(dir, "transactions.csv")
}

func TestAddThenSummary(t *testing.T) {
	ledger := setupHome(t)

	out, err := runLedger(t, "", "add", "--file", ledger,
		"--type", "expense", "--category", "food", "--amount", "23.5", "--date", "2025-01-16", "--desc", "Groceries")
	if err != nil {
		t.Fatalf("add: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Transaction added!") {
		t.Fatalf("unexpected add output:\n%s", out)
	}

	data, err := os.ReadFile(ledger)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "type,category,amount,date,description\nExpense,Food,23.50,2025-01-16,Groceries\n" {
		t.Fatalf("unexpected file:\n%s", data)
	}

	out, err = runLedger(t, "", "summary", "-f", ledger, "--year", "2025", "--month", "1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"Summary for 2025-01", "$0.00", "$23.50", "$-23.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestAddRejectsBadFlags(t *testing.T) {
	ledger := setupHome(t)

	cases := [][]string{
		{"--type", "transfer", "--category", "food", "--amount", "1"},
		{"--type", "income", "--category", "food", "--amount", "1"},
		{"--type", "expense", "--category", "food", "--amount", "abc"},
		{"--type", "expense", "--category", "food", "--amount", "1", "--date", "15-01-2025"},
		{"--type", "expense", "--category", "food", "--amount", "1", "--desc", "a, b"},
		{"--type", "expense", "--category", "food"},
	}
	for _, args := range cases {
		if _, err := runLedger(t, "", append([]string{"add", "--file", ledger}, args...)...); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
	if _, err := os.Stat(ledger); !os.IsNotExist(err) {
		t.Fatalf("nothing should have been saved")
	}
}

func TestListByMonth(t *testing.T) {
	ledger := setupHome(t)
	content := "type,category,amount,date,description\n" +
		"Income,Salary,1500.00,2025-01-15,January paycheck\n" +
		"Expense,Rent,800.00,2025-02-01,February rent\n"
	if err := os.WriteFile(ledger, []byte(content), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := runLedger(t, "", "list", "-f", ledger, "--year", "2025", "--month", "2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "February rent") || strings.Contains(out, "January paycheck") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	if _, err := runLedger(t, "", "list", "-f", ledger, "--year", "2025"); err == nil {
		t.Fatalf("expected error for --year without --month")
	}
}

func TestShellRunsWithoutSubcommand(t *testing.T) {
	ledger := setupHome(t)

	out, err := runLedger(t, "1\n1\n1\n1500\n2025-01-15\nPay\n3\n5\n", "--file", ledger)
	if err != nil {
		t.Fatalf("shell: %v\n%s", err, out)
	}
	for _, want := range []string{"Expense Tracker:", "Transaction added!", "Saved to " + ledger, "Exiting..."} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfo(t *testing.T) {
	ledger := setupHome(t)

	out, err := runLedger(t, "", "info", "--file", ledger)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{ledger, "Not Found", "plain", "config.yaml"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info missing %q:\n%s", want, out)
		}
	}
}
