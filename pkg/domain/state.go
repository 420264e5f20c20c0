package domain

// State is a named node of the machine graph.
type State struct {
	Name  string
	Start bool
	Final bool

	// Transitions keep their declaration order from the source model.
	// Lookup relies on it: first exact match wins, then first wildcard.
	Transitions []Transition
}

// FindTransition resolves which rule applies for the consumed symbol.
// Exact rules are scanned first in declaration order; if none matches, the
// first wildcard rule is used. A wildcard never overrides an exact match.
func (s *State) FindTransition(consumed Symbol, wildcard Symbol) (Transition, bool) {
	for _, t := range s.Transitions {
		if t.Consumed == consumed {
			return t, true
		}
	}
	for _, t := range s.Transitions {
		if t.Consumed == wildcard {
			return t, true
		}
	}
	return Transition{}, false
}
