package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a chart-uploader.yaml file and validates the fields it sets.
// Required fields are not enforced here since they may come from another
// layer, the environment or flags.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Version != 1 {
		return nil, &ValidationError{Errors: []string{fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version)}}
	}
	if errs := validate(&cfg, false); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks an effective Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	return validate(cfg, true)
}

func validate(cfg *Config, required bool) []string {
	var errs []string

	if cfg.Version != 0 && cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	switch {
	case cfg.Server != "":
		errs = append(errs, validateServer(cfg.Server)...)
	case required:
		errs = append(errs, "'server' is required — pass --server or set "+EnvServer)
	}

	if required && cfg.Token == "" {
		errs = append(errs, "'token' is required — pass --token or set "+EnvToken)
	}

	if required && cfg.Path == "" {
		errs = append(errs, "'path' is required — pass --path")
	}

	if cfg.Extension != "" && strings.ContainsAny(cfg.Extension, `/\. `) {
		errs = append(errs, fmt.Sprintf("invalid extension '%s' — give the bare extension, e.g. 'ksh'", cfg.Extension))
	}

	if cfg.MaxRetries != nil && *cfg.MaxRetries < 0 {
		errs = append(errs, fmt.Sprintf("max_retries must be >= 0, got %d", *cfg.MaxRetries))
	}
	if cfg.RetryDelay != nil && *cfg.RetryDelay < 0 {
		errs = append(errs, fmt.Sprintf("retry_delay must be >= 0, got %d", *cfg.RetryDelay))
	}
	if cfg.Timeout != nil && *cfg.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("timeout must be >= 0, got %d", *cfg.Timeout))
	}

	return errs
}

func validateServer(server string) []string {
	u, err := url.Parse(server)
	if err != nil {
		return []string{fmt.Sprintf("invalid server URL '%s': %v", server, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []string{fmt.Sprintf("invalid server URL '%s' — scheme must be http or https", server)}
	}
	if u.Host == "" {
		return []string{fmt.Sprintf("invalid server URL '%s' — missing host", server)}
	}
	return nil
}
