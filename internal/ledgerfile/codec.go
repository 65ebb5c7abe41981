// Package ledgerfile reads and writes the flat ledger file.
//
// The format is a header line followed by one comma separated record per
// transaction:
//
//	type,category,amount,date,description
//	Income,Salary,1500.00,2025-01-15,January paycheck
//
// Fields are written verbatim. Nothing is quoted or escaped, so a
// description containing a comma will not read back as a valid record.
package ledgerfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
)

var ErrFieldCount = errors.New("wrong number of fields")

// LineError describes a record line that was skipped during a load.
type LineError struct {
	Line int // 1-based, header included
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Malformed reports whether the line had the wrong number of fields, as
// opposed to a field that failed to parse.
func (e *LineError) Malformed() bool {
	return errors.Is(e.Err, ErrFieldCount)
}

// LoadReport summarises one decode pass.
type LoadReport struct {
	Loaded  int
	Skipped []*LineError
}

// FormatRecord renders tx as one record line without the trailing newline.
func FormatRecord(tx model.Transaction) string {
	return strings.Join([]string{
		tx.Kind.String(),
		string(tx.Category),
		utils.FormatAmount(tx.Amount),
		model.FormatDate(tx.Date),
		tx.Description,
	}, ",")
}

// ParseRecord parses one record line. Empty trailing fields are kept, so
// "Expense,Food,1.00,2025-01-01," has an empty description.
func ParseRecord(line string) (model.Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != constants.CSVFieldCount {
		return model.Transaction{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(parts), constants.CSVFieldCount)
	}

	kind, err := model.ParseKind(parts[0])
	if err != nil {
		return model.Transaction{}, err
	}
	category, err := kind.ParseCategory(parts[1])
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := utils.ParseAmount(parts[2])
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := model.ParseDate(parts[3])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(kind, category, amount, date, parts[4])
}

// Encode writes the header and every transaction to w.
func Encode(w io.Writer, txs []model.Transaction) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(constants.CSVHeader + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, tx := range txs {
		if _, err := bw.WriteString(FormatRecord(tx) + "\n"); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}

// Decode skips the first line of r and hands every valid record to add in
// file order. Bad lines are collected in the report and do not stop the
// pass. A read error stops it; records already handed to add stay there.
func Decode(r io.Reader, add func(model.Transaction)) (LoadReport, error) {
	var report LoadReport

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return report, fmt.Errorf("failed to read line %d: %w", lineNo+1, readErr)
		}
		if raw == "" && readErr != nil {
			return report, nil
		}

		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		if lineNo > 1 {
			tx, err := ParseRecord(line)
			if err != nil {
				report.Skipped = append(report.Skipped, &LineError{Line: lineNo, Text: line, Err: err})
			} else {
				add(tx)
				report.Loaded++
			}
		}

		if readErr != nil {
			return report, nil
		}
	}
}
