package cliconfig

import (
	"testing"
	"time"

	"github.com/bft-labs/kalliopectl/pkg/settings"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Settings != settings.Default() {
		t.Errorf("Settings = %+v, want defaults", cfg.Settings)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %v, want text", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantURL    string
		wantOutput string
	}{
		{
			name:       "defaults are valid",
			config:     DefaultConfig(),
			wantURL:    "localhost:5000",
			wantOutput: OutputText,
		},
		{
			name: "strips scheme and trailing slash",
			config: Config{
				Settings:    settings.Settings{URL: "http://pi.local:5000/"},
				HTTPTimeout: time.Second,
				Output:      OutputJSON,
			},
			wantURL:    "pi.local:5000",
			wantOutput: OutputJSON,
		},
		{
			name: "empty url is left to the client",
			config: Config{
				HTTPTimeout: time.Second,
			},
			wantURL:    "",
			wantOutput: OutputText,
		},
		{
			name: "https rejected",
			config: Config{
				Settings:    settings.Settings{URL: "https://pi.local:5000"},
				HTTPTimeout: time.Second,
			},
			wantErr: true,
		},
		{
			name: "non-positive timeout",
			config: Config{
				Settings: settings.Default(),
			},
			wantErr: true,
		},
		{
			name: "unknown output",
			config: Config{
				Settings:    settings.Default(),
				HTTPTimeout: time.Second,
				Output:      "yaml",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Error("Validate() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if cfg.Settings.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", cfg.Settings.URL, tt.wantURL)
			}
			if cfg.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", cfg.Output, tt.wantOutput)
			}
		})
	}
}

func TestConfig_Redacted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.Password = "secret"

	if got := cfg.Redacted().Settings.Password; got != "*****" {
		t.Errorf("Redacted password = %q", got)
	}
	if cfg.Settings.Password != "secret" {
		t.Error("Redacted mutated the original")
	}
}
