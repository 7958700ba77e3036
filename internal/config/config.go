package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"worldlang/pkg/interpreter"
)

// Config is the host configuration read from a YAML file
type Config struct {
	Constants Constants `yaml:"constants"` // variables bound before the script runs
	World     string    `yaml:"world"`     // grid file loaded into the world
	MaxSteps  int       `yaml:"max_steps"` // 0 = unlimited
	Script    string    `yaml:"script"`    // program run when none is given on the command line
}

// Constants maps names to script values. Non-negative integers become
// Uint, other numbers Double, and strings String.
type Constants map[string]interpreter.Value

// Load reads the config at path. Relative world and script paths are
// resolved against the config file's directory.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.World = resolve(dir, cfg.World)
	cfg.Script = resolve(dir, cfg.Script)
	return cfg, nil
}

// Decode reads a config from r. An empty document is an empty config.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max_steps must not be negative, got %d", cfg.MaxSteps)
	}
	return &cfg, nil
}

func (c *Constants) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*c = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("constants must be a mapping")
	}

	out := make(Constants, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i].Decode(&name); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("constants must not use empty names")
		}

		v, err := constantValue(value.Content[i+1])
		if err != nil {
			return fmt.Errorf("constant %q: %w", name, err)
		}
		out[name] = v
	}

	*c = out
	return nil
}

func constantValue(node *yaml.Node) (interpreter.Value, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: must be a number or a string", node.Line)
	}

	switch node.Tag {
	case "!!int":
		if u, err := strconv.ParseUint(node.Value, 0, 64); err == nil {
			return interpreter.Uint(u), nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return interpreter.Double(f), nil

	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsNaN(f) {
			return nil, fmt.Errorf("line %d: NaN is not a value", node.Line)
		}
		return interpreter.Double(f), nil

	case "!!str":
		return interpreter.String(node.Value), nil
	}

	return nil, fmt.Errorf("line %d: unsupported value %q", node.Line, node.Value)
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
