// Package shell runs the numbered menu loop over a prompts.Prompter.
package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/utils"
	"github.com/hance08/ledger/internal/validation"
)

const (
	choiceAdd = iota + 1
	choiceSummary
	choiceSave
	choiceLoad
	choiceExit
)

var menuOptions = []string{
	"Add Transaction",
	"View Monthly Summary",
	"Save to File",
	"Load from File",
	"Exit",
}

type Shell struct {
	svc      *service.Service
	prompter prompts.Prompter
	printer  *ui.Printer
	currency string
	logger   *log.Logger
}

func New(svc *service.Service, prompter prompts.Prompter, w io.Writer, logger *log.Logger) *Shell {
	return &Shell{
		svc:      svc,
		prompter: prompter,
		printer:  ui.NewPrinter(w),
		currency: svc.Config.Display.CurrencySymbol,
		logger:   logger,
	}
}

// Run loops until Exit is chosen or input runs out. Any other error from
// the prompter, such as a user abort, is returned.
func (s *Shell) Run() error {
	for {
		choice, err := s.prompter.Choose("Expense Tracker:", menuOptions)
		if err = answerError(err); err != nil {
			return endOfInput(err)
		}

		switch choice {
		case choiceAdd:
			err = s.addTransaction()
		case choiceSummary:
			err = s.viewSummary()
		case choiceSave:
			s.save()
		case choiceLoad:
			s.load()
		case choiceExit:
			s.printer.Info("Exiting...")
			return nil
		default:
			s.printer.Error("Invalid choice!")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) addTransaction() error {
	typeChoice, err := prompts.PromptTransactionType(s.prompter)
	if err = answerError(err); err != nil {
		return err
	}
	kind, err := model.KindFromChoice(typeChoice)
	if err != nil {
		s.printer.Error("Invalid choice!")
		return nil
	}

	categoryChoice, err := prompts.PromptCategory(s.prompter, kind)
	if err = answerError(err); err != nil {
		return err
	}
	category, err := kind.CategoryAt(categoryChoice)
	if err != nil {
		s.printer.Error("Invalid category!")
		return nil
	}

	rawAmount, err := prompts.PromptAmount(s.prompter)
	if err != nil {
		return err
	}
	amount, err := utils.ParseAmount(rawAmount)
	if err != nil {
		s.printer.Error("Invalid amount!")
		return nil
	}

	rawDate, err := prompts.PromptTransactionDate(s.prompter)
	if err != nil {
		return err
	}
	date, err := model.ParseDate(strings.TrimSpace(rawDate))
	if err != nil {
		s.printer.Error("Invalid date format!")
		return nil
	}

	description, err := prompts.PromptDescription(s.prompter)
	if err != nil {
		return err
	}
	if err := validation.ValidateDescription(description); err != nil {
		s.printer.Warning("Careful: %v", err)
	}

	tx, err := model.NewTransaction(kind, category, amount, date, description)
	if err == nil {
		err = s.svc.Transaction.Add(tx)
	}
	if err != nil {
		s.logger.Error("transaction rejected", "err", err)
		s.printer.Error("Invalid choice!")
		return nil
	}

	s.printer.Success("Transaction added!")
	return nil
}

func (s *Shell) viewSummary() error {
	year, err := prompts.PromptYear(s.prompter)
	if errors.Is(err, prompts.ErrNotANumber) {
		s.printer.Error("Invalid number!")
		return nil
	}
	if err != nil {
		return err
	}

	month, err := prompts.PromptMonth(s.prompter)
	if errors.Is(err, prompts.ErrNotANumber) {
		s.printer.Error("Invalid number!")
		return nil
	}
	if err != nil {
		return err
	}

	summary := s.svc.Summary.Monthly(year, month)
	return views.RenderMonthlySummary(s.printer.Writer(), summary, s.currency)
}

func (s *Shell) save() {
	err := s.svc.File.Save()
	views.RenderSaveResult(s.printer, s.svc.File.Path(), err)
}

func (s *Shell) load() {
	report, err := s.svc.File.Load()
	views.RenderLoadResult(s.printer, s.svc.File.Path(), report, err)
}

// answerError treats a non-numeric answer like an out of range one; the
// prompter already returned 0 for it.
func answerError(err error) error {
	if errors.Is(err, prompts.ErrNotANumber) {
		return nil
	}
	return err
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
