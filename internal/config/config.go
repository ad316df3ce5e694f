// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() for defaults and Load(ctx) for layered loading.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// APIBaseURL points at the canonical backend, e.g.
	// "http://localhost:8000/api". Empty means no backend is configured.
	APIBaseURL string `koanf:"api_base_url"`

	// MockMode selects the fixture gateway. Defaults to true whenever no
	// backend URL is configured; an explicit value wins either way. The
	// selection is immutable for the lifetime of the process.
	MockMode *bool `koanf:"mock_mode"`

	// HTTPTimeoutMS bounds each outbound gateway request.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// RetryCount sets transport-failure retries on outbound requests.
	RetryCount int `koanf:"retry_count"`

	// IncludeManagers folds /managers into roster fetches once the
	// backend enumerates them. Off by default; the current backend
	// only lists employees and trainers.
	IncludeManagers bool `koanf:"include_managers"`

	// DemoPassword is the credential seeded fixture accounts accept in
	// mock mode.
	DemoPassword string `koanf:"demo_password"`

	// ExperienceMax caps the experience filter range.
	ExperienceMax int `koanf:"experience_max"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9090",
		APIBaseURL:    "",
		HTTPTimeoutMS: 10_000,
		RetryCount:    2,
		DemoPassword:  "password123",
		ExperienceMax: 50,
	}
}

// Mock resolves the effective gateway selection: an explicit override wins,
// otherwise mock mode follows from the absence of a configured backend.
func (c *Config) Mock() bool {
	if c.MockMode != nil {
		return *c.MockMode
	}
	return c.APIBaseURL == ""
}
