package domain

import (
	"encoding/json"
	"fmt"
)

// Symbol is a single tape cell content. The alphabet is open: any rune the
// model mentions is a valid symbol.
type Symbol rune

func (s Symbol) String() string {
	return string(rune(s))
}

// MarshalJSON encodes the symbol as a one-character string, matching the
// textual model format.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a one-character string into a symbol.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sym, err := ParseSymbol(str)
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// ParseSymbol decodes the wire form of a symbol: exactly one character.
func ParseSymbol(s string) (Symbol, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	return Symbol(runes[0]), nil
}

// Default sentinels, matching the common textual model convention.
const (
	DefaultBlank    Symbol = '_'
	DefaultWildcard Symbol = '*'
)

// Alphabet holds the two distinguished symbols of a model: the blank filling
// unwritten cells and the wildcard used as a transition fallback.
type Alphabet struct {
	Blank    Symbol
	Wildcard Symbol
}

// DefaultAlphabet returns the conventional `_` / `*` sentinels.
func DefaultAlphabet() Alphabet {
	return Alphabet{Blank: DefaultBlank, Wildcard: DefaultWildcard}
}

// Move is the head movement of a transition.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveStay
)

// ParseMove decodes the single-letter wire form (L, R, S), case-insensitive.
func ParseMove(s string) (Move, error) {
	switch s {
	case "L", "l":
		return MoveLeft, nil
	case "R", "r":
		return MoveRight, nil
	case "S", "s":
		return MoveStay, nil
	}
	return MoveStay, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "L"
	case MoveRight:
		return "R"
	default:
		return "S"
	}
}

// MarshalJSON encodes the move in its single-letter wire form.
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes the single-letter wire form.
func (m *Move) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	mv, err := ParseMove(str)
	if err != nil {
		return err
	}
	*m = mv
	return nil
}
