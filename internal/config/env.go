package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consulted by FromEnv.
const (
	EnvServer = "CHART_UPLOADER_SERVER"
	EnvToken  = "CHART_UPLOADER_TOKEN"
)

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set are left untouched and a missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// FromEnv returns a config layer holding the values set in the environment.
func FromEnv() *Config {
	return &Config{
		Server: strings.TrimSpace(os.Getenv(EnvServer)),
		Token:  strings.TrimSpace(os.Getenv(EnvToken)),
	}
}
