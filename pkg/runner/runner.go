package runner

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
)

// Runner handles the execution loop of a Simulator using provided IO.
// This allows for easy testing and integration with different frontends
// (CLI, HTTP, scripts). It uses a TraceSink strategy to abstract the output
// mode (text vs NDJSON).
type Runner struct {
	// Sink is the trace strategy. If nil, a text sink on Output is used.
	Sink ports.TraceSink

	// Output is the fallback writer when Sink is nil. Defaults to stdout.
	Output io.Writer

	// Verbose emits one record per executed step, not just the final result.
	Verbose bool

	// JSON selects the NDJSON sink when Sink is nil.
	JSON bool

	// Renderer optionally pretty-prints the final identifier in text mode.
	Renderer IdentifierRenderer

	// Logger is used for internal debug logging. If nil, a no-op logger is
	// used.
	Logger *slog.Logger
}

// IdentifierRenderer transforms a configuration snapshot before outputting
// it. This allows TUI rendering (head highlighting, colors) without coupling
// the runner to a terminal library.
type IdentifierRenderer func(domain.Identifier) string

// NewRunner creates a Runner writing plain text to stdout.
func NewRunner() *Runner {
	return &Runner{
		Output: os.Stdout,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Run seeds the simulator with input and executes it to a terminal status,
// writing the trace and the final result to the sink. The simulator's step
// limit is honored in both verbose and quiet mode.
func (r *Runner) Run(sim *machina.Simulator, input string) (domain.RunResult, error) {
	sink := r.resolveSink()
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sim.Input(input)
	logger.Debug("run started", "input_len", len(input), "verbose", r.Verbose)

	var res domain.RunResult
	if r.Verbose {
		var err error
		res, err = r.runVerbose(sim, sink)
		if err != nil {
			return res, err
		}
	} else {
		var err error
		res, err = sim.Resume()
		if err != nil {
			return res, err
		}
	}

	logger.Debug("run finished", "status", res.Status, "steps", res.Steps)
	return res, sink.WriteResult(sim.Identifier(), res)
}

// runVerbose steps manually so every transition reaches the sink. When the
// step ceiling is hit, the remainder is delegated to the machine's own run
// loop so the terminal status stays consistent with quiet mode.
func (r *Runner) runVerbose(sim *machina.Simulator, sink ports.TraceSink) (domain.RunResult, error) {
	limit := sim.StepLimit()
	index := 0
	for {
		if limit >= 0 && index >= limit {
			return sim.Resume()
		}
		step, err := sim.Step()
		if err != nil {
			return domain.RunResult{}, err
		}
		if step.Halted {
			return domain.RunResult{Status: step.Status, Steps: index}, nil
		}
		index++
		ev := &domain.StepEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStep,
			Index:     index,
			Result:    step,
		}
		if err := sink.WriteStep(ev); err != nil {
			return domain.RunResult{}, err
		}
	}
}

func (r *Runner) resolveSink() ports.TraceSink {
	if r.Sink != nil {
		return r.Sink
	}
	out := r.Output
	if out == nil {
		out = os.Stdout
	}
	if r.JSON {
		return NewJSONSink(out)
	}
	return NewTextSink(out, r.Renderer)
}
