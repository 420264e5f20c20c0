// Package cli contains the command logic behind the machina binary,
// separated from flag wiring so it can be tested with plain readers and
// writers.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/internal/logging"
	"github.com/aretw0/machina/internal/presentation/tui"
	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
	"github.com/aretw0/machina/pkg/runner"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	File    string
	Format  string
	Input   string
	// InputSet distinguishes an explicit empty --input from an absent flag;
	// when absent, the input is read from stdin.
	InputSet bool
	Verbose  bool
	JSON     bool
	Limit    int
	Debug    bool
	NoColor  bool

	// IO overrides for tests. Nil means stdin/stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// Run executes a machine from a model file and prints the trace/result.
func Run(opts RunOptions) error {
	logger := resolveLogger(opts.Debug)
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	sim, err := machina.Load(opts.File,
		machina.WithFormat(ports.Format(opts.Format)),
		machina.WithStepLimit(opts.Limit),
		machina.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	input, err := ResolveInput(opts.Input, opts.InputSet, opts.Stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	r := runner.NewRunner()
	r.Output = stdout
	r.Verbose = opts.Verbose
	r.JSON = opts.JSON
	r.Logger = logger
	if !opts.JSON && !opts.NoColor {
		r.Renderer = tui.RenderIdentifier
	}

	res, err := r.Run(sim, input)
	if err != nil {
		return err
	}

	logger.Info("machine halted", "status", res.Status, "steps", res.Steps)
	return nil
}

func resolveLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// DefaultLimit is the run command's step ceiling when --limit is not given:
// unbounded, matching the library default. Callers wanting a guarantee
// against non-halting models must pass a limit.
const DefaultLimit = domain.NoStepLimit
