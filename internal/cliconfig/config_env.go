package cliconfig

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvURL         = "KALLIOPE_URL"
	EnvUsername    = "KALLIOPE_USERNAME"
	EnvPassword    = "KALLIOPE_PASSWORD"
	EnvMuteVoice   = "KALLIOPE_MUTE_VOICE"
	EnvHTTPTimeout = "KALLIOPE_HTTP_TIMEOUT"
	EnvLogLevel    = "KALLIOPE_LOG_LEVEL"
	EnvLogFile     = "KALLIOPE_LOG_FILE"
	EnvOutput      = "KALLIOPE_OUTPUT"
)

// ApplyEnvConfig applies configuration from environment variables (KALLIOPE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", os.Getenv(EnvURL), &cfg.Settings.URL)
	s.setString("username", os.Getenv(EnvUsername), &cfg.Settings.Username)
	s.setString("password", os.Getenv(EnvPassword), &cfg.Settings.Password)
	s.setBoolFromString("mute-voice", os.Getenv(EnvMuteVoice), &cfg.Settings.MuteVoice)

	if err := s.setDuration("timeout", os.Getenv(EnvHTTPTimeout), &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setString("log-file", os.Getenv(EnvLogFile), &cfg.LogFile)
	s.setString("output", os.Getenv(EnvOutput), &cfg.Output)

	return nil
}
