package machina

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/machina/internal/compiler"
	"github.com/aretw0/machina/internal/runtime"
	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
)

// Simulator is the high-level entry point for the machina library.
// It wraps the internal runtime machine and provides a simplified API for
// consumers.
type Simulator struct {
	machine   *runtime.Machine
	parser    ports.ModelParser
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	format    ports.Format
	stepLimit int
	Name      string
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithHooks registers observability callbacks fired on every step and halt.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithStepLimit caps every Run at n steps. The default is no limit;
// a non-halting model then makes Run spin forever.
func WithStepLimit(n int) Option {
	return func(s *Simulator) {
		s.stepLimit = n
	}
}

// WithFormat forces the model format, bypassing extension inference in Load.
func WithFormat(format ports.Format) Option {
	return func(s *Simulator) {
		s.format = format
	}
}

// WithParser injects a custom model parser, bypassing the default one.
func WithParser(p ports.ModelParser) Option {
	return func(s *Simulator) {
		s.parser = p
	}
}

// New builds a simulator from an already-parsed model. The model is
// validated first; a validation failure means no simulator is constructed.
func New(model *domain.Model, opts ...Option) (*Simulator, error) {
	sim := &Simulator{stepLimit: domain.NoStepLimit, format: ports.FormatInferred}
	for _, opt := range opts {
		opt(sim)
	}
	if sim.logger == nil {
		sim.logger = slog.New(slog.DiscardHandler)
	}
	if sim.Name != "" {
		sim.logger = sim.logger.With("machine", sim.Name)
	}

	machine, err := runtime.NewMachine(model,
		runtime.WithHooks(sim.hooks),
		runtime.WithLogger(sim.logger),
	)
	if err != nil {
		return nil, err
	}
	sim.machine = machine
	return sim, nil
}

// Load reads a model file, infers its format from the extension (unless
// WithFormat overrides it) and builds a simulator.
func Load(path string, opts ...Option) (*Simulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	probe := &Simulator{format: ports.FormatInferred}
	for _, opt := range opts {
		opt(probe)
	}
	format := probe.format
	if format == ports.FormatInferred {
		format = compiler.FormatFromPath(path)
	}
	parser := probe.parser
	if parser == nil {
		parser = compiler.NewParser()
	}

	model, err := parser.Parse(data, format)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	return New(model, append([]Option{func(s *Simulator) { s.Name = name }}, opts...)...)
}

// ParseModel decodes serialized model text with the default parser.
func ParseModel(data []byte, format ports.Format) (*domain.Model, error) {
	return compiler.NewParser().Parse(data, format)
}

// Input seeds the tape and rewinds the machine to the start state.
func (s *Simulator) Input(input string) {
	s.machine.Input(input)
}

// Step executes a single transition. See runtime.Machine.Step.
func (s *Simulator) Step() (domain.StepResult, error) {
	return s.machine.Step()
}

// Run seeds the tape with input and steps the machine until it halts or the
// configured step limit is reached.
func (s *Simulator) Run(input string) (domain.RunResult, error) {
	s.machine.Input(input)
	return s.machine.Run(s.stepLimit)
}

// Resume continues a run in progress, honoring the configured step limit.
func (s *Simulator) Resume() (domain.RunResult, error) {
	return s.machine.Run(s.stepLimit)
}

// Reset rewinds the machine to the start state with an empty tape.
func (s *Simulator) Reset() {
	s.machine.Reset()
}

// Status returns the machine's execution status.
func (s *Simulator) Status() domain.Status {
	return s.machine.Status()
}

// StepLimit returns the configured step ceiling (domain.NoStepLimit if none).
func (s *Simulator) StepLimit() int {
	return s.stepLimit
}

// Identifier returns a read-only snapshot of the current configuration.
func (s *Simulator) Identifier() domain.Identifier {
	return s.machine.Identifier()
}

// Model returns a deep copy of the simulator's model.
func (s *Simulator) Model() *domain.Model {
	return s.machine.Model()
}
