package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/kalliopectl/pkg/settings"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				URL:         "pi.local:5000",
				Username:    "admin",
				Password:    "secret",
				MuteVoice:   &trueVal,
				HTTPTimeout: "5s",
				LogLevel:    "debug",
				LogFile:     "/tmp/kalliopectl.log",
				Output:      "json",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Settings: settings.Settings{
					URL:       "pi.local:5000",
					Username:  "admin",
					Password:  "secret",
					MuteVoice: true,
				},
				HTTPTimeout: 5 * time.Second,
				LogLevel:    "debug",
				LogFile:     "/tmp/kalliopectl.log",
				Output:      "json",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				URL:      "file.local:5000",
				Username: "file-user",
			},
			changed: map[string]bool{"url": true},
			initial: Config{
				Settings: settings.Settings{URL: "flag.local:5000"},
			},
			expected: Config{
				Settings: settings.Settings{
					URL:      "flag.local:5000", // unchanged because flag was set
					Username: "file-user",
				},
			},
		},
		{
			name:       "explicit false mute_voice overrides",
			fileConfig: FileConfig{MuteVoice: &falseVal},
			changed:    map[string]bool{},
			initial:    Config{Settings: settings.Settings{MuteVoice: true}},
			expected:   Config{},
		},
		{
			name:       "empty values keep current",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{HTTPTimeout: "soon"},
			changed:    map[string]bool{},
			initial:    Config{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
url = "pi.local:5000"
username = "admin"
password = "secret"
mute_voice = true
http_timeout = "3s"
output = "json"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() unexpected error: %v", err)
	}

	if fc.URL != "pi.local:5000" {
		t.Errorf("URL = %v, want pi.local:5000", fc.URL)
	}
	if fc.Username != "admin" || fc.Password != "secret" {
		t.Errorf("credentials = %v/%v", fc.Username, fc.Password)
	}
	if fc.MuteVoice == nil || !*fc.MuteVoice {
		t.Errorf("MuteVoice = %v, want true", fc.MuteVoice)
	}
	if fc.HTTPTimeout != "3s" {
		t.Errorf("HTTPTimeout = %v, want 3s", fc.HTTPTimeout)
	}
	if fc.Output != "json" {
		t.Errorf("Output = %v, want json", fc.Output)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	if _, err := LoadFileConfig("/nonexistent/path/config.toml"); err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	if err := os.WriteFile(configPath, []byte("url = [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("no home directory")
	}
	if !strings.HasSuffix(path, filepath.Join(".kalliopectl", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v", path)
	}
}

func TestFileExists(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "exists.toml")
	if err := os.WriteFile(existing, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !FileExists(existing) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(existing + ".missing") {
		t.Error("FileExists() = true for missing file")
	}
}
