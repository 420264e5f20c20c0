// Package validator checks the structural integrity of a model before any
// machine is built from it.
package validator

import (
	"fmt"

	"github.com/aretw0/machina/pkg/domain"
)

// ValidateModel reports every structural problem of the model at once:
// missing or duplicate start state, duplicate state names, dangling
// transition targets and colliding alphabet sentinels.
func ValidateModel(m *domain.Model) error {
	var problems []string

	if len(m.States) == 0 {
		problems = append(problems, "model has no states")
	}

	if m.Alphabet.Blank == m.Alphabet.Wildcard {
		problems = append(problems,
			fmt.Sprintf("blank and wildcard symbols collide (%q)", m.Alphabet.Blank.String()))
	}

	names := make(map[string]bool, len(m.States))
	starts := 0
	for _, s := range m.States {
		if s.Name == "" {
			problems = append(problems, "state with empty name")
			continue
		}
		if names[s.Name] {
			problems = append(problems, fmt.Sprintf("duplicate state name %q", s.Name))
		}
		names[s.Name] = true
		if s.Start {
			starts++
		}
	}

	switch {
	case starts == 0 && len(m.States) > 0:
		problems = append(problems, "no start state")
	case starts > 1:
		problems = append(problems, fmt.Sprintf("%d start states, want exactly one", starts))
	}

	for _, s := range m.States {
		for _, t := range s.Transitions {
			if !names[t.Next] {
				problems = append(problems,
					fmt.Sprintf("state %q: transition targets unknown state %q", s.Name, t.Next))
			}
		}
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}
