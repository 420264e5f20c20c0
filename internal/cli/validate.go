package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/machina"
	"github.com/aretw0/machina/internal/compiler"
	"github.com/aretw0/machina/internal/validator"
	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	File   string
	Format string
	// Print re-serializes the validated model in canonical form to stdout.
	Print bool
	// PrintFormat selects the output format for --print (defaults to json).
	PrintFormat string

	Stdout io.Writer
}

// Validate parses a model file and checks its structural integrity.
// Problems are reported together, not one at a time.
func Validate(opts ValidateOptions) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}

	format := ports.Format(opts.Format)
	if format == ports.FormatInferred {
		format = compiler.FormatFromPath(opts.File)
	}

	model, err := machina.ParseModel(data, format)
	if err != nil {
		return err
	}

	if err := validator.ValidateModel(model); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				fmt.Fprintf(stdout, "problem: %s\n", p)
			}
		}
		return err
	}

	if opts.Print {
		out, err := compiler.NewParser().Marshal(model, ports.Format(opts.PrintFormat))
		if err != nil {
			return err
		}
		stdout.Write(out)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			fmt.Fprintln(stdout)
		}
		return nil
	}

	fmt.Fprintln(stdout, "model is valid")
	return nil
}
