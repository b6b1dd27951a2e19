package settings

import "errors"

// DefaultURL is the host:port of a Kalliope core API running locally.
const DefaultURL = "localhost:5000"

// ErrEmptyURL is returned by Validate when no server address is configured.
var ErrEmptyURL = errors.New("settings: url is required")

// Settings holds the parameters needed to reach a Kalliope core API.
type Settings struct {
	// URL is the host:port of the API server, without scheme.
	URL string `json:"url"`

	// Username and Password are sent as HTTP Basic credentials.
	// Empty values are sent as-is.
	Username string `json:"username"`
	Password string `json:"password"`

	// MuteVoice asks Kalliope not to speak when running synapses.
	MuteVoice bool `json:"mute_voice"`
}

// Overrides is a partial Settings. A nil field means "not provided".
type Overrides struct {
	URL       *string
	Username  *string
	Password  *string
	MuteVoice *bool
}

// Default returns Settings with default values.
func Default() Settings {
	return Settings{
		URL: DefaultURL,
	}
}

// New returns the defaults with the provided overrides applied.
// No validation is performed.
func New(o Overrides) Settings {
	return Default().Apply(o)
}

// Apply returns a copy of s with every non-nil field of o applied.
func (s Settings) Apply(o Overrides) Settings {
	if o.URL != nil {
		s.URL = *o.URL
	}
	if o.Username != nil {
		s.Username = *o.Username
	}
	if o.Password != nil {
		s.Password = *o.Password
	}
	if o.MuteVoice != nil {
		s.MuteVoice = *o.MuteVoice
	}
	return s
}

// Validate reports whether s can be used to issue requests.
func (s Settings) Validate() error {
	if s.URL == "" {
		return ErrEmptyURL
	}
	return nil
}

// BaseURL returns the plain-HTTP base address of the API server.
func (s Settings) BaseURL() string {
	return "http://" + s.URL
}

// Redacted returns a copy of s that is safe to log.
func (s Settings) Redacted() Settings {
	if s.Password != "" {
		s.Password = "*****"
	}
	return s
}

// String returns a pointer to v, for building Overrides.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for building Overrides.
func Bool(v bool) *bool { return &v }
