package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *log.Logger
}

// NewApp wires the in-memory store and the services for one run
func NewApp(cfg *config.Config, logger *log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ledgerPath, err := ExpandPath(cfg.Ledger.File)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ledger file: %w", err)
	}
	cfg.Ledger.File = ledgerPath

	memStore := store.NewMemoryStore()
	svc := service.NewService(memStore, cfg, logger)

	logger.Debug("app ready", "file", ledgerPath, "ui", cfg.UI.Mode)

	return &App{
		Service: svc,
		Store:   memStore,
		Logger:  logger,
	}, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// ExpandPath resolves a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
