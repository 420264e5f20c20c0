package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMachineHalted is returned by Step on a machine that already reached a
// terminal status. The tape and step counter are left untouched.
var ErrMachineHalted = errors.New("machine already halted")

// ErrNoInput is returned by Step and Run before Input was ever called.
var ErrNoInput = errors.New("no input loaded")

// ErrInvalidMove is returned when a move letter is not one of L, R, S.
var ErrInvalidMove = errors.New("invalid move")

// ErrInvalidSymbol is returned when a wire symbol is not a single character.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ValidationError reports every structural problem of a model at once.
// It is fatal to machine construction: no partially built machine is ever
// observable.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid model: %s", strings.Join(e.Problems, "; "))
}

// ParseError wraps a format decoder failure. The simulation core treats it
// as an opaque upstream failure.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s model: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
