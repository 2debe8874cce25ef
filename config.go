package exprlang

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Quirks keeps long-standing evaluator behaviors that existing programs may
// rely on. Both are on by default.
type Quirks struct {
	// NotEqualIsEqual makes "!=" evaluate like "==".
	NotEqualIsEqual bool `yaml:"not_equal_is_equal"`
	// ShiftLeftAssignAdds makes "<<=" add instead of shift.
	ShiftLeftAssignAdds bool `yaml:"shift_left_assign_adds"`
}

type Config struct {
	// Echo prints the value of the last top-level expression of a run
	// unless it is None.
	Echo    bool   `yaml:"echo"`
	// Prelude forces the embedded prelude on or off. Unset, only
	// interactive sessions load it.
	Prelude *bool  `yaml:"prelude"`
	Trace   bool   `yaml:"trace"`
	History string `yaml:"history"`
	Quirks  Quirks `yaml:"quirks"`
}

func DefaultConfig() *Config {
	return &Config{
		History: ".exprlang_history",
		Quirks: Quirks{
			NotEqualIsEqual:     true,
			ShiftLeftAssignAdds: true,
		},
	}
}

// WantsPrelude reports whether a session should start with the prelude.
func (c *Config) WantsPrelude(interactive bool) bool {
	if c.Prelude == nil {
		return interactive
	}
	return *c.Prelude
}

// LoadConfig reads YAML over the defaults. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
