package cliconfig

import "fmt"

// Resolve layers the config file at path (if it exists) and the environment
// over base, then validates the result. Flags recorded in changed keep the
// value already present in base.
func Resolve(base Config, path string, changed map[string]bool) (Config, error) {
	cfg := base

	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
