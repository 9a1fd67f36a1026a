package balldontlie

import "errors"

// BaseURL is the production endpoint of the balldontlie API
const BaseURL = "https://api.balldontlie.io/v1"

// Errors for client configuration
var (
	ErrConfigMissingBaseURL = errors.New("balldontlie: base URL is required")
)

// Config holds configuration for the balldontlie API client.
// An empty APIKey means no credential is attached to requests; the API then
// serves a restricted free tier. Page sizes are the defaults applied when a
// query does not specify its own.
type Config struct {
	// BaseURL is the root of the upstream API
	BaseURL string
	// APIKey is the bearer credential, or empty to send no Authorization header
	APIKey string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// PerPage is the default page size for list endpoints
	PerPage int
	// RosterPerPage is the page size used for team roster lookups
	RosterPerPage int
}

// NewConfig creates a new client configuration with defaults
func NewConfig(apiKey string) *Config {
	return &Config{
		BaseURL:        BaseURL,
		APIKey:         apiKey,
		TimeoutSeconds: 10,
		PerPage:        25,
		RosterPerPage:  100,
	}
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	if c.PerPage <= 0 {
		c.PerPage = 25
	}
	if c.RosterPerPage <= 0 {
		c.RosterPerPage = 100
	}
	return nil
}

// HasAPIKey reports whether a bearer credential is configured
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
