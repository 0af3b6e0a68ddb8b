package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvAPIKeys is a comma-separated list of Gemini API keys that overrides
// gemini.api_keys from the config file when set.
const EnvAPIKeys = "GEMINI_API_KEYS"

// Load reads and validates the YAML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if env := os.Getenv(EnvAPIKeys); env != "" {
		cfg.Gemini.APIKeys = nil
		for _, key := range strings.Split(env, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.Gemini.APIKeys = append(cfg.Gemini.APIKeys, key)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
