package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	URL         string `toml:"url"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	MuteVoice   *bool  `toml:"mute_voice"`
	HTTPTimeout string `toml:"http_timeout"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	Output      string `toml:"output"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.kalliopectl/config.toml, or "" when the
// home directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".kalliopectl", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", fc.URL, &cfg.Settings.URL)
	s.setString("username", fc.Username, &cfg.Settings.Username)
	s.setString("password", fc.Password, &cfg.Settings.Password)
	s.setBool("mute-voice", fc.MuteVoice, &cfg.Settings.MuteVoice)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setString("output", fc.Output, &cfg.Output)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
