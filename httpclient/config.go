package httpclient

import (
	"fmt"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultAgent      = "X-GameClient-Agent"
	defaultAuthHeader = "Authorization"
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the fixed base URL prepended to every request route.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Agent is the User-Agent header value identifying the client.
	Agent string `yaml:"agent" mapstructure:"agent"`

	// AuthHeader is the name of the authorization header. Defaults to
	// "Authorization"; override-able for backends using a custom header.
	AuthHeader string `yaml:"auth_header" mapstructure:"auth_header"`

	// InitialCredential seeds the credential store before any login has
	// succeeded. The backend rejects it; it only keeps the header present.
	InitialCredential string `yaml:"initial_credential" mapstructure:"initial_credential"`

	// Timeout is the per-request timeout enforced by the underlying
	// transport. Defaults to 30s. A timed-out request surfaces as a
	// transport failure.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Agent == "" {
		c.Agent = defaultAgent
	}
	if c.AuthHeader == "" {
		c.AuthHeader = defaultAuthHeader
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("httpclient: base_url is required")
	}
	if c.AuthHeader == "" {
		return fmt.Errorf("httpclient: auth_header must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	return nil
}
