package config

import "time"

// Defaults applied when no layer sets a value.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 // seconds
	DefaultExtension  = "ksh"
)

// Config represents a chart-uploader.yaml configuration file, or the
// effective configuration after all layers, environment and flags are
// merged. Pointer fields distinguish "unset" from an explicit zero.
type Config struct {
	Version         int    `yaml:"version,omitempty"`
	Server          string `yaml:"server,omitempty"`
	Token           string `yaml:"token,omitempty"`
	Path            string `yaml:"path,omitempty"`
	Extension       string `yaml:"extension,omitempty"`
	MaxRetries      *int   `yaml:"max_retries,omitempty"`
	RetryDelay      *int   `yaml:"retry_delay,omitempty"` // seconds
	Timeout         *int   `yaml:"timeout,omitempty"`     // seconds; 0 keeps the HTTP client default
	ContinueOnError *bool  `yaml:"continue_on_error,omitempty"`
}

// Retries returns the configured retry count or DefaultMaxRetries.
func (c *Config) Retries() int {
	if c.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *c.MaxRetries
}

// Delay returns the fixed wait between attempts.
func (c *Config) Delay() time.Duration {
	secs := DefaultRetryDelay
	if c.RetryDelay != nil {
		secs = *c.RetryDelay
	}
	return time.Duration(secs) * time.Second
}

// HTTPTimeout returns the per-request timeout, or 0 for none.
func (c *Config) HTTPTimeout() time.Duration {
	if c.Timeout == nil {
		return 0
	}
	return time.Duration(*c.Timeout) * time.Second
}

// ContinueOnErrors reports whether a failed file should not stop the run.
func (c *Config) ContinueOnErrors() bool {
	return c.ContinueOnError != nil && *c.ContinueOnError
}

// ChartExtension returns the configured extension or DefaultExtension.
func (c *Config) ChartExtension() string {
	if c.Extension == "" {
		return DefaultExtension
	}
	return c.Extension
}
