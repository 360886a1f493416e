package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func levels(layers []ConfigLayerInfo) []ConfigLevel {
	out := make([]ConfigLevel, len(layers))
	for i, l := range layers {
		out[i] = l.Level
	}
	return out
}

func TestDiscoverPathsOrder(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")
	dir := t.TempDir()

	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:      filepath.Join(dir, "chart-uploader.yaml"),
		SystemConfigPath: filepath.Join(dir, "etc.yaml"),
		UserConfigPath:   filepath.Join(dir, "home.yaml"),
	})

	want := []ConfigLevel{LevelSystem, LevelUser, LevelProject}
	if diff := cmp.Diff(want, levels(layers)); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
	if layers[1].Path != filepath.Join(dir, "home.yaml") {
		t.Errorf("user path = %q", layers[1].Path)
	}
}

func TestDiscoverPathsNoInheritOption(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")

	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:      "charts.yaml",
		SystemConfigPath: "/etc/chart-uploader/chart-uploader.yaml",
		UserConfigPath:   "/home/player/.config/chart-uploader/chart-uploader.yaml",
		NoInherit:        true,
	})

	if diff := cmp.Diff([]ConfigLevel{LevelProject}, levels(layers)); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverPathsNoInheritEnv(t *testing.T) {
	for _, value := range []string{"1", "true", " TRUE "} {
		t.Run(value, func(t *testing.T) {
			t.Setenv(EnvNoInheritVar, value)
			layers := DiscoverPaths(DiscoverOptions{
				ProjectPath:      "charts.yaml",
				SystemConfigPath: "/etc/chart-uploader/chart-uploader.yaml",
			})
			if diff := cmp.Diff([]ConfigLevel{LevelProject}, levels(layers)); diff != "" {
				t.Errorf("levels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscoverPathsNoInheritWithoutProject(t *testing.T) {
	layers := DiscoverPaths(DiscoverOptions{
		SystemConfigPath: "/etc/chart-uploader/chart-uploader.yaml",
		NoInherit:        true,
	})
	if len(layers) != 0 {
		t.Errorf("expected no layers, got %+v", layers)
	}
}

func TestDiscoverPathsSameFileKeptOnce(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	shared := filepath.Join(dir, "chart-uploader.yaml")

	// The relative and absolute spellings resolve to the same file; it stays
	// at the system level.
	t.Chdir(dir)
	layers := DiscoverPaths(DiscoverOptions{
		ProjectPath:      "chart-uploader.yaml",
		SystemConfigPath: shared,
		UserConfigPath:   filepath.Join(dir, "user.yaml"),
	})

	if diff := cmp.Diff([]ConfigLevel{LevelSystem, LevelUser}, levels(layers)); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverPathsDefaults(t *testing.T) {
	t.Setenv(EnvNoInheritVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	layers := DiscoverPaths(DiscoverOptions{})
	if diff := cmp.Diff([]ConfigLevel{LevelSystem, LevelUser}, levels(layers)); diff != "" {
		t.Fatalf("levels mismatch (-want +got):\n%s", diff)
	}

	suffix := filepath.Join(configDirName, DefaultProjectPath)
	for _, l := range layers {
		if !strings.HasSuffix(l.Path, suffix) {
			t.Errorf("%s path = %q, want suffix %q", l.Level, l.Path, suffix)
		}
	}
}

func TestEnvNoInherit(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"T", true},
		{"0", false},
		{"false", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvNoInheritVar, tt.value)
		if got := EnvNoInherit(); got != tt.want {
			t.Errorf("EnvNoInherit() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}
