package service

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hance08/ledger/internal/ledgerfile"
	"github.com/hance08/ledger/internal/store"
)

// FileService moves the whole session to and from the ledger file.
type FileService struct {
	repo   store.Repository
	path   string
	logger *log.Logger
}

func NewFileService(repo store.Repository, path string, logger *log.Logger) *FileService {
	return &FileService{repo: repo, path: path, logger: logger}
}

func (fs *FileService) Path() string {
	return fs.path
}

// Save overwrites the ledger file with the session. The session is left
// untouched whether or not the write succeeds.
func (fs *FileService) Save() error {
	txs := fs.repo.All()
	if err := ledgerfile.WriteFile(fs.path, txs); err != nil {
		fs.logger.Error("save failed", "file", fs.path, "err", err)
		return err
	}
	fs.logger.Info("ledger saved", "file", fs.path, "count", len(txs))
	return nil
}

// Load replaces the session with the contents of the ledger file. The
// session is cleared first, so on a missing file it stays empty and on a
// read error it keeps whatever was parsed before the failure.
func (fs *FileService) Load() (ledgerfile.LoadReport, error) {
	fs.repo.Clear()

	report, err := ledgerfile.ReadFile(fs.path, fs.repo.Append)
	for _, skipped := range report.Skipped {
		fs.logger.Debug("line skipped", "file", fs.path, "line", skipped.Line, "err", skipped.Err)
	}
	if errors.Is(err, ledgerfile.ErrFileNotFound) {
		fs.logger.Info("no ledger file yet", "file", fs.path)
		return report, err
	}
	if err != nil {
		fs.logger.Warn("load failed", "file", fs.path, "loaded", report.Loaded, "err", err)
		return report, err
	}

	fs.logger.Info("ledger loaded", "file", fs.path, "loaded", report.Loaded, "skipped", len(report.Skipped))
	return report, nil
}
