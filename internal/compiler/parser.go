// Package compiler turns serialized model text (JSON, YAML or TOML) into a
// domain.Model and back. It is the concrete implementation of the
// ports.ModelParser contract; the simulation core never imports it.
package compiler

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/machina/internal/dto"
	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
)

// Parser decodes model documents. All formats funnel through the same
// generic map and the same mapstructure decode, so field handling cannot
// drift between formats.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

var _ ports.ModelParser = (*Parser)(nil)

// Parse decodes data in the given format into a model. With FormatInferred
// it tries JSON, then TOML, then YAML, and keeps the first that decodes.
func (p *Parser) Parse(data []byte, format ports.Format) (*domain.Model, error) {
	raw, format, err := decodeFront(data, format)
	if err != nil {
		return nil, err
	}

	var doc dto.ModelDocument
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, &domain.ParseError{Format: string(format), Err: err}
	}

	model, err := buildModel(&doc)
	if err != nil {
		return nil, &domain.ParseError{Format: string(format), Err: err}
	}
	return model, nil
}

// Marshal serializes a model back into the given format, for round-tripping
// and canonical printing. FormatInferred defaults to JSON.
func (p *Parser) Marshal(model *domain.Model, format ports.Format) ([]byte, error) {
	doc := buildDocument(model)
	switch format {
	case ports.FormatJSON, ports.FormatInferred:
		return json.MarshalIndent(doc, "", "  ")
	case ports.FormatYAML:
		return yaml.Marshal(doc)
	case ports.FormatTOML:
		return toml.Marshal(doc)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// FormatFromPath infers the serialization format from a file extension.
func FormatFromPath(path string) ports.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ports.FormatJSON
	case ".yaml", ".yml":
		return ports.FormatYAML
	case ".toml":
		return ports.FormatTOML
	}
	return ports.FormatInferred
}

// decodeFront parses the raw bytes into a generic document.
func decodeFront(data []byte, format ports.Format) (map[string]any, ports.Format, error) {
	var raw map[string]any
	switch format {
	case ports.FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, format, &domain.ParseError{Format: "json", Err: err}
		}
	case ports.FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, format, &domain.ParseError{Format: "yaml", Err: err}
		}
	case ports.FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, format, &domain.ParseError{Format: "toml", Err: err}
		}
	case ports.FormatInferred:
		// JSON and TOML are strict, so try them before YAML, which accepts
		// nearly any text as a scalar.
		if err := json.Unmarshal(data, &raw); err == nil {
			return raw, ports.FormatJSON, nil
		}
		if err := toml.Unmarshal(data, &raw); err == nil {
			return raw, ports.FormatTOML, nil
		}
		if err := yaml.Unmarshal(data, &raw); err == nil && raw != nil {
			return raw, ports.FormatYAML, nil
		}
		return nil, format, &domain.ParseError{
			Format: "inferred",
			Err:    fmt.Errorf("content is not valid JSON, TOML or YAML"),
		}
	default:
		return nil, format, fmt.Errorf("unsupported format %q", format)
	}
	return raw, format, nil
}

// buildModel converts the wire document into the domain model.
func buildModel(doc *dto.ModelDocument) (*domain.Model, error) {
	alphabet := domain.DefaultAlphabet()
	if doc.Config != nil {
		if doc.Config.Blank != "" {
			sym, err := domain.ParseSymbol(doc.Config.Blank)
			if err != nil {
				return nil, fmt.Errorf("config.blank: %w", err)
			}
			alphabet.Blank = sym
		}
		if doc.Config.Wildcard != "" {
			sym, err := domain.ParseSymbol(doc.Config.Wildcard)
			if err != nil {
				return nil, fmt.Errorf("config.wildcard: %w", err)
			}
			alphabet.Wildcard = sym
		}
	}

	model := &domain.Model{Alphabet: alphabet}
	for _, sd := range doc.States {
		state := domain.State{
			Name:  sd.Name,
			Start: sd.Start,
			Final: sd.Final,
		}
		for _, td := range sd.Transitions {
			tr, err := buildTransition(td)
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", sd.Name, err)
			}
			state.Transitions = append(state.Transitions, tr)
		}
		model.States = append(model.States, state)
	}
	return model, nil
}

func buildTransition(td dto.TransitionDocument) (domain.Transition, error) {
	cons, err := domain.ParseSymbol(td.Cons)
	if err != nil {
		return domain.Transition{}, fmt.Errorf("cons: %w", err)
	}
	prod, err := domain.ParseSymbol(td.Prod)
	if err != nil {
		return domain.Transition{}, fmt.Errorf("prod: %w", err)
	}
	move, err := domain.ParseMove(td.Move)
	if err != nil {
		return domain.Transition{}, err
	}
	if td.Next == "" {
		return domain.Transition{}, fmt.Errorf("transition %s/%s has no next state", td.Cons, td.Prod)
	}
	return domain.Transition{Consumed: cons, Produced: prod, Move: move, Next: td.Next}, nil
}

// buildDocument converts a model back to its wire shape.
func buildDocument(model *domain.Model) *dto.ModelDocument {
	doc := &dto.ModelDocument{}
	if model.Alphabet != domain.DefaultAlphabet() {
		doc.Config = &dto.ConfigDocument{
			Blank:    model.Alphabet.Blank.String(),
			Wildcard: model.Alphabet.Wildcard.String(),
		}
	}
	for _, s := range model.States {
		sd := dto.StateDocument{
			Name:  s.Name,
			Start: s.Start,
			Final: s.Final,
		}
		for _, t := range s.Transitions {
			sd.Transitions = append(sd.Transitions, dto.TransitionDocument{
				Next: t.Next,
				Cons: t.Consumed.String(),
				Prod: t.Produced.String(),
				Move: t.Move.String(),
			})
		}
		doc.States = append(doc.States, sd)
	}
	return doc
}
