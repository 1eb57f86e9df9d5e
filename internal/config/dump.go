package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const redacted = "<redacted>"

// Dump renders the effective configuration as YAML for --print-config, hiding secrets.
func (c Config) Dump() ([]byte, error) {
	out := c.Clone()
	if out.GeminiAPIKey != "" {
		out.GeminiAPIKey = redacted
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
