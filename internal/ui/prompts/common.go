package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter asks questions with huh forms in the terminal.
type HuhPrompter struct{}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Choose(title string, options []string) (int, error) {
	return PromptSelect(title, options, 1)
}

func (p *HuhPrompter) Number(title string) (int, error) {
	answer, err := PromptInput(title, "")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, answer)
	}
	return n, nil
}

func (p *HuhPrompter) Text(title string) (string, error) {
	return PromptInput(title, "")
}

// PromptInput prompts for a generic text input with an optional placeholder
func PromptInput(message string, placeholder string) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if placeholder != "" {
		input.Placeholder(placeholder)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	return inputVal, nil
}

// PromptSelect prompts for a selection from a list of options and returns
// its 1-based position
func PromptSelect(message string, options []string, defaultChoice int) (int, error) {
	selected := defaultChoice

	var opts []huh.Option[int]
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i+1))
	}

	err := huh.NewSelect[int]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(len(options) + 2).
		Run()
	if err != nil {
		return 0, err
	}
	return selected, nil
}
