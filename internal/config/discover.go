package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// DefaultProjectPath is the config file looked up in the working directory.
const DefaultProjectPath = "chart-uploader.yaml"

// EnvNoInheritVar disables the system and user layers when set to a true
// value ("1", "true", "t").
const EnvNoInheritVar = "CHART_UPLOADER_NO_INHERIT"

const configDirName = "chart-uploader"

// ConfigLevel is the precedence level of a config file.
type ConfigLevel string

const (
	LevelSystem  ConfigLevel = "system"
	LevelUser    ConfigLevel = "user"
	LevelProject ConfigLevel = "project"
)

// ConfigLayerInfo describes one config file candidate and its load status.
type ConfigLayerInfo struct {
	Level  ConfigLevel
	Path   string
	Loaded bool
	Err    error // set when the file exists but failed to load
}

// DiscoverOptions controls which config files are consulted.
type DiscoverOptions struct {
	ProjectPath string // --config; empty skips the project layer

	// SystemConfigPath and UserConfigPath replace the platform defaults.
	// Tests point them at nonexistent files to isolate the host.
	SystemConfigPath string
	UserConfigPath   string

	// NoInherit keeps only the project layer. CHART_UPLOADER_NO_INHERIT
	// has the same effect.
	NoInherit bool
}

// inherit reports whether the system and user layers take part.
func (o DiscoverOptions) inherit() bool {
	return !o.NoInherit && !EnvNoInherit()
}

// DiscoverPaths lists the config files to load, lowest precedence first:
// system, user, project. A file reachable through several levels is kept
// only at the lowest one.
func DiscoverPaths(opts DiscoverOptions) []ConfigLayerInfo {
	candidates := []ConfigLayerInfo{{Level: LevelProject, Path: opts.ProjectPath}}
	if opts.inherit() {
		candidates = append([]ConfigLayerInfo{
			{Level: LevelSystem, Path: orDefault(opts.SystemConfigPath, defaultSystemConfigPath)},
			{Level: LevelUser, Path: orDefault(opts.UserConfigPath, defaultUserConfigPath)},
		}, candidates...)
	}

	seen := make(map[string]bool, len(candidates))
	layers := candidates[:0]
	for _, c := range candidates {
		if c.Path == "" {
			continue
		}
		key := c.Path
		if abs, err := filepath.Abs(c.Path); err == nil {
			key = abs
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		layers = append(layers, c)
	}
	return layers
}

func orDefault(path string, def func() string) string {
	if path != "" {
		return path
	}
	return def()
}

// defaultSystemConfigPath is /etc/chart-uploader/chart-uploader.yaml, or
// the ProgramData equivalent on Windows.
func defaultSystemConfigPath() string {
	base := "/etc"
	if runtime.GOOS == "windows" {
		base = os.Getenv("ProgramData")
		if base == "" {
			base = `C:\ProgramData`
		}
	}
	return filepath.Join(base, configDirName, DefaultProjectPath)
}

// defaultUserConfigPath lives under os.UserConfigDir, or is empty when the
// platform has none (e.g. HOME unset).
func defaultUserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, DefaultProjectPath)
}

// EnvNoInherit reports whether CHART_UPLOADER_NO_INHERIT holds a true value.
func EnvNoInherit() bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvNoInheritVar)))
	return err == nil && v
}
