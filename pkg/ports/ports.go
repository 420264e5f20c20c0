// Package ports declares the contracts between the simulation core and its
// collaborators. The core never parses text or touches the console itself;
// those concerns plug in through these interfaces.
package ports

import "github.com/aretw0/machina/pkg/domain"

// Format names a model serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	// FormatInferred asks the parser to detect the format from the content.
	FormatInferred Format = ""
)

// ModelParser converts serialized model text into a domain.Model.
// Implementations must return a model satisfying the structural invariants
// checked by the validator, or an error; machine construction re-validates
// regardless, it does not trust the parser.
type ModelParser interface {
	Parse(data []byte, format Format) (*domain.Model, error)
}

// TraceSink consumes per-step records during a verbose run.
type TraceSink interface {
	WriteStep(ev *domain.StepEvent) error
	WriteResult(id domain.Identifier, res domain.RunResult) error
}
