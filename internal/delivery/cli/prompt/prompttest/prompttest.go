// Package prompttest provides a Prompter that replays canned answers.
package prompttest

import (
	"fmt"
	"sync"

	"employee-tracker/internal/delivery/cli/choices"
	"employee-tracker/internal/delivery/cli/prompt"
)

// Script answers prompts from a fixed list. Input returns the next answer as
// typed; Select picks the first choice whose label equals the next answer.
// Once the answers run out every prompt returns prompt.ErrAborted.
type Script struct {
	mu      sync.Mutex
	answers []string
	// Asked records every prompt label in the order it was shown.
	Asked []string
	// Offered records the labels offered by each Select, keyed by prompt label.
	Offered map[string][]string
}

func New(answers ...string) *Script {
	return &Script{answers: answers, Offered: make(map[string][]string)}
}

func (s *Script) next(label string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Asked = append(s.Asked, label)
	if len(s.answers) == 0 {
		return "", prompt.ErrAborted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *Script) Input(label string) (string, error) {
	return s.next(label)
}

func (s *Script) Select(label string, items []choices.Choice) (choices.Choice, error) {
	offered := make([]string, len(items))
	for i, c := range items {
		offered[i] = c.Label
	}
	s.mu.Lock()
	s.Offered[label] = offered
	if len(items) == 0 {
		s.Asked = append(s.Asked, label)
		s.mu.Unlock()
		return choices.Choice{}, fmt.Errorf("%s: %w", label, prompt.ErrNoChoices)
	}
	s.mu.Unlock()

	answer, err := s.next(label)
	if err != nil {
		return choices.Choice{}, err
	}
	for _, c := range items {
		if c.Label == answer {
			return c, nil
		}
	}
	return choices.Choice{}, fmt.Errorf("%s: no choice labelled %q", label, answer)
}

// Remaining reports how many answers have not been used.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}
