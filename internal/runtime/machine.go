package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/machina/internal/validator"
	"github.com/aretw0/machina/pkg/domain"
)

// Machine executes a validated model against one input at a time.
//
// A machine is single-threaded: it owns its tape and current-state pointer
// exclusively and assumes at most one execution in flight. Callers needing
// concurrent simulations build one machine per goroutine.
type Machine struct {
	model  *domain.Model
	states map[string]*domain.State
	start  string

	current string
	tape    *Tape
	steps   int
	status  domain.Status

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a structured logger for step-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// NewMachine validates the model and builds a machine positioned at the
// start state with an empty tape. A validation failure means no machine is
// constructed at all.
func NewMachine(model *domain.Model, opts ...Option) (*Machine, error) {
	if err := validator.ValidateModel(model); err != nil {
		return nil, err
	}

	model = model.Clone()

	m := &Machine{
		model:  model,
		states: make(map[string]*domain.State, len(model.States)),
	}
	for i := range model.States {
		s := &model.States[i]
		m.states[s.Name] = s
		if s.Start {
			m.start = s.Name
		}
	}
	m.current = m.start
	m.status = domain.StatusReady

	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	return m, nil
}

// Input seeds the tape with the given string (head on its first character),
// rewinds the machine to the start state and resets the step counter.
func (m *Machine) Input(input string) {
	m.tape = NewTape(input, m.model.Alphabet.Blank)
	m.current = m.start
	m.steps = 0
	m.status = domain.StatusReady
	m.logger.Debug("input loaded", "len", len(input), "state", m.current)
}

// Reset rewinds the machine to the start state with an empty tape.
func (m *Machine) Reset() {
	m.tape = nil
	m.current = m.start
	m.steps = 0
	m.status = domain.StatusReady
}

// Status returns the current execution status.
func (m *Machine) Status() domain.Status {
	return m.status
}

// Step executes a single transition.
//
// If no rule applies the machine halts: StatusHaltedFinal when the current
// state is final (accept), StatusHaltedStuck otherwise (reject). Halting is
// reported through the result, not as an error. Calling Step again after any
// terminal status returns ErrMachineHalted and mutates nothing.
func (m *Machine) Step() (domain.StepResult, error) {
	if m.status.Halted() {
		return domain.StepResult{}, domain.ErrMachineHalted
	}
	if m.tape == nil {
		return domain.StepResult{}, domain.ErrNoInput
	}

	state := m.states[m.current]
	consumed := m.tape.Read()

	tr, ok := state.FindTransition(consumed, m.model.Alphabet.Wildcard)
	if !ok {
		if state.Final {
			m.status = domain.StatusHaltedFinal
		} else {
			m.status = domain.StatusHaltedStuck
		}
		res := domain.StepResult{
			From:     m.current,
			Consumed: consumed,
			Produced: consumed,
			Move:     domain.MoveStay,
			Halted:   true,
			Status:   m.status,
		}
		m.logger.Debug("machine halted", "state", m.current, "status", m.status, "steps", m.steps)
		m.emitHalt()
		return res, nil
	}

	// The produced symbol is written literally, wildcard included.
	m.tape.Write(tr.Produced)
	m.tape.Move(tr.Move)
	prev := m.current
	m.current = tr.Next
	m.steps++
	m.status = domain.StatusRunning

	res := domain.StepResult{
		From:     prev,
		Consumed: consumed,
		Produced: tr.Produced,
		Move:     tr.Move,
		To:       tr.Next,
		Status:   m.status,
	}
	m.logger.Debug("step",
		"from", prev, "to", tr.Next,
		"consumed", consumed.String(), "produced", tr.Produced.String(),
		"move", tr.Move.String(), "steps", m.steps)
	m.emitStep(res)
	return res, nil
}

// Run steps the machine until it halts or the step counter reaches limit.
// A negative limit (domain.NoStepLimit) disables the ceiling; Run then only
// returns when the simulated machine halts, which may be never.
// A limit of zero executes no steps and halts immediately with
// StatusHaltedStepLimit.
func (m *Machine) Run(limit int) (domain.RunResult, error) {
	if m.tape == nil {
		return domain.RunResult{}, domain.ErrNoInput
	}
	for !m.status.Halted() {
		if limit >= 0 && m.steps >= limit {
			m.status = domain.StatusHaltedStepLimit
			m.logger.Debug("step limit reached", "limit", limit)
			m.emitHalt()
			break
		}
		if _, err := m.Step(); err != nil {
			return domain.RunResult{}, fmt.Errorf("run aborted: %w", err)
		}
	}
	return domain.RunResult{Status: m.status, Steps: m.steps}, nil
}

// Identifier returns a read-only snapshot of the current configuration.
func (m *Machine) Identifier() domain.Identifier {
	id := domain.Identifier{
		State:  m.current,
		Steps:  m.steps,
		Status: m.status,
	}
	if m.tape != nil {
		id.Tape = m.tape.Snapshot()
	}
	return id
}

// Model returns a deep copy of the machine's model, for round-tripping back
// to a serialized document.
func (m *Machine) Model() *domain.Model {
	return m.model.Clone()
}

func (m *Machine) emitStep(res domain.StepResult) {
	if m.hooks.OnStep == nil {
		return
	}
	m.hooks.OnStep(&domain.StepEvent{
		Timestamp: time.Now(),
		Type:      domain.EventStep,
		Index:     m.steps,
		Result:    res,
	})
}

func (m *Machine) emitHalt() {
	if m.hooks.OnHalt == nil {
		return
	}
	m.hooks.OnHalt(&domain.HaltEvent{
		Timestamp: time.Now(),
		Type:      domain.EventHalt,
		Status:    m.status,
		Steps:     m.steps,
	})
}
