package ledgerfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hance08/ledger/internal/model"
)

var ErrFileNotFound = errors.New("file not found")

// WriteFile truncates path and writes every transaction to it.
func WriteFile(path string, txs []model.Transaction) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can not create ledger file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close ledger file %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, txs); err != nil {
		return fmt.Errorf("failed to write ledger file %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes path, see Decode. A missing file yields ErrFileNotFound.
func ReadFile(path string, add func(model.Transaction)) (LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadReport{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return LoadReport{}, fmt.Errorf("can not open ledger file %s: %w", path, err)
	}
	defer f.Close()

	report, err := Decode(f, add)
	if err != nil {
		return report, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	}
	return report, nil
}
