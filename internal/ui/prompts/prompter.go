package prompts

import "errors"

// ErrNotANumber is returned by Choose and Number when the answer is not an
// integer. The returned value is 0 in that case.
var ErrNotANumber = errors.New("not a number")

// Prompter asks the user one typed question at a time. Implementations
// return io.EOF once input is exhausted.
type Prompter interface {
	// Choose shows numbered options and returns the 1-based number typed
	// by the user. The number is not range checked.
	Choose(title string, options []string) (int, error)
	Number(title string) (int, error)
	Text(title string) (string, error)
}
