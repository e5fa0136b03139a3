package tlox

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI driver's ambient configuration, loaded from an optional
// YAML file: a small struct with yaml tags, unmarshalled straight from disk.
type Config struct {
	// Prompt overrides the REPL prompt (default "> ").
	Prompt string `yaml:"prompt"`

	// Natives, if non-empty, restricts the registered prelude to functions named
	// here. An empty list registers every native in DefaultPrelude.
	Natives []string `yaml:"natives"`
}

// DefaultConfig is the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{Prompt: "> "}
}

// LoadConfig reads and parses the YAML config file at path. A missing file is
// not an error: it yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FilterPrelude restricts all to the names listed in c.Natives. With no
// allow-list configured, every native is kept.
func (c Config) FilterPrelude(all []*NativeFunction) []*NativeFunction {
	if len(c.Natives) == 0 {
		return all
	}

	allowed := make(map[string]bool, len(c.Natives))
	for _, n := range c.Natives {
		allowed[n] = true
	}

	var out []*NativeFunction
	for _, f := range all {
		if allowed[f.Name] {
			out = append(out, f)
		}
	}

	return out
}
