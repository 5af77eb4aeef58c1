package primitives

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TransitionConfig declares a single labeled arc. Input may be the reserved
// epsilon literal "ɛ".
type TransitionConfig struct {
	From  string `json:"from" yaml:"from"`
	Input string `json:"input" yaml:"input"`
	To    string `json:"to" yaml:"to"`
}

// AutomatonConfig is the declarative definition of a nondeterministic
// automaton, used by the surrounding tooling (cmd/demo, examples) to
// construct automata without hand-written call sequences. It is a
// construction convenience, not a persistence format.
type AutomatonConfig struct {
	ID          string             `json:"id" yaml:"id"`
	Initial     []string           `json:"initial" yaml:"initial"`
	Accepting   []string           `json:"accepting,omitempty" yaml:"accepting,omitempty"`
	Transitions []TransitionConfig `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// Validate validates the automaton definition:
// - Non-empty ID
// - At least one initial state
// - No blank state identifiers or inputs in any transition
func (c *AutomatonConfig) Validate() error {
	if c.ID == "" {
		return errors.New("automaton ID is required")
	}
	if len(c.Initial) == 0 {
		return errors.New("at least one initial state is required")
	}
	for i, id := range c.Initial {
		if id == "" {
			return fmt.Errorf("initial state %d is blank", i)
		}
	}
	for i, id := range c.Accepting {
		if id == "" {
			return fmt.Errorf("accepting state %d is blank", i)
		}
	}
	for i, t := range c.Transitions {
		if t.From == "" || t.To == "" {
			return fmt.Errorf("transition %d: from and to are required", i)
		}
		if t.Input == "" {
			return fmt.Errorf("transition %d (%s -> %s): input is required", i, t.From, t.To)
		}
	}
	return nil
}

// LoadConfig decodes a YAML automaton definition and validates it.
func LoadConfig(r io.Reader) (*AutomatonConfig, error) {
	var cfg AutomatonConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode automaton config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid automaton config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and decodes a YAML automaton definition from disk.
func LoadConfigFile(path string) (*AutomatonConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open automaton config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
