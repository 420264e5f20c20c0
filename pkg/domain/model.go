package domain

// Model is the parsed, validated collection of states a machine runs.
// It is built once by a parser and treated as immutable afterwards.
type Model struct {
	// States keep their declaration order from the source document.
	States []State

	// Alphabet carries the blank and wildcard sentinels for this model.
	Alphabet Alphabet
}

// State returns the state with the given name, if any.
func (m *Model) State(name string) (*State, bool) {
	for i := range m.States {
		if m.States[i].Name == name {
			return &m.States[i], true
		}
	}
	return nil, false
}

// StartState returns the designated start state, if exactly one exists the
// result is meaningful; validation enforces that before a machine is built.
func (m *Model) StartState() (*State, bool) {
	for i := range m.States {
		if m.States[i].Start {
			return &m.States[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the model. Machines clone their model on
// construction so a caller mutating the original cannot affect a running
// machine.
func (m *Model) Clone() *Model {
	out := &Model{
		States:   make([]State, len(m.States)),
		Alphabet: m.Alphabet,
	}
	for i, s := range m.States {
		cs := s
		cs.Transitions = append([]Transition(nil), s.Transitions...)
		out.States[i] = cs
	}
	return out
}
