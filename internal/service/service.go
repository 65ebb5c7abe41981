package service

import (
	"github.com/charmbracelet/log"
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/store"
)

type Service struct {
	Transaction *TransactionService
	Summary     *SummaryService
	File        *FileService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, logger *log.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(repo, logger),
		Summary:     NewSummaryService(repo),
		File:        NewFileService(repo, cfg.Ledger.File, logger),
		Config:      cfg,
	}
}
