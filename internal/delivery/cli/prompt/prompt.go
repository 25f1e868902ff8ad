package prompt

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"employee-tracker/internal/delivery/cli/choices"
)

var (
	// ErrAborted is returned when the operator interrupts a prompt or input
	// ends.
	ErrAborted = errors.New("prompt aborted")
	// ErrNoChoices is returned by Select for an empty choice list.
	ErrNoChoices = errors.New("nothing to choose from")
)

type Prompter interface {
	Input(label string) (string, error)
	Select(label string, items []choices.Choice) (choices.Choice, error)
}

// PromptUI is the interactive terminal Prompter.
type PromptUI struct {
	// PageSize caps how many options a select shows at once.
	PageSize int
}

func (p PromptUI) Input(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	answer, err := prompt.Run()
	if err != nil {
		return "", translate(err)
	}
	return answer, nil
}

func (p PromptUI) Select(label string, items []choices.Choice) (choices.Choice, error) {
	if len(items) == 0 {
		return choices.Choice{}, fmt.Errorf("%s: %w", label, ErrNoChoices)
	}
	labels := make([]string, len(items))
	for i, c := range items {
		labels[i] = c.Label
	}

	size := p.PageSize
	if size <= 0 {
		size = 10
	}
	sel := promptui.Select{
		Label: label,
		Items: labels,
		Size:  size,
	}
	i, _, err := sel.Run()
	if err != nil {
		return choices.Choice{}, translate(err)
	}
	return items[i], nil
}

func translate(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return fmt.Errorf("%w: %v", ErrAborted, err)
	}
	return err
}
