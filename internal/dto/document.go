// Package dto holds the wire shape of a serialized model document,
// shared by every format front end.
package dto

// ModelDocument is the serialized form of a machine model. The same shape
// is accepted in JSON, YAML and TOML; "mapstructure" tags drive the decode
// from the generic document, the per-format tags drive marshaling back.
type ModelDocument struct {
	States []StateDocument `mapstructure:"states" json:"states" yaml:"states" toml:"states"`
	Config *ConfigDocument `mapstructure:"config" json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

// StateDocument is one state entry. Start and final default to false.
type StateDocument struct {
	Name        string               `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Start       bool                 `mapstructure:"start" json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
	Final       bool                 `mapstructure:"final" json:"final,omitempty" yaml:"final,omitempty" toml:"final,omitempty"`
	Transitions []TransitionDocument `mapstructure:"transitions" json:"transitions,omitempty" yaml:"transitions,omitempty" toml:"transitions,omitempty"`
}

// TransitionDocument is one transition rule. Cons and Prod are single
// characters (or the wildcard/blank sentinels); Move is one of L, R, S.
type TransitionDocument struct {
	Next string `mapstructure:"next" json:"next" yaml:"next" toml:"next"`
	Cons string `mapstructure:"cons" json:"cons" yaml:"cons" toml:"cons"`
	Prod string `mapstructure:"prod" json:"prod" yaml:"prod" toml:"prod"`
	Move string `mapstructure:"move" json:"move" yaml:"move" toml:"move"`
}

// ConfigDocument overrides the default `_` / `*` sentinels for models whose
// alphabet needs those characters as ordinary symbols.
type ConfigDocument struct {
	Blank    string `mapstructure:"blank" json:"blank,omitempty" yaml:"blank,omitempty" toml:"blank,omitempty"`
	Wildcard string `mapstructure:"wildcard" json:"wildcard,omitempty" yaml:"wildcard,omitempty" toml:"wildcard,omitempty"`
}
