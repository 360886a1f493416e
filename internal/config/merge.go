package config

import (
	"errors"
	"fmt"
	"os"
)

// Merge combines two configs where overlay takes precedence over base.
//   - version: must agree if both declare it (non-zero); fatal error on mismatch
//   - string fields: a non-empty overlay value wins
//   - pointer fields: a non-nil overlay value wins, so an explicit zero overrides
func Merge(base, overlay *Config) (*Config, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := *base

	if err := mergeVersion(base.Version, overlay.Version, &result.Version); err != nil {
		return nil, err
	}

	mergeString(&result.Server, overlay.Server)
	mergeString(&result.Token, overlay.Token)
	mergeString(&result.Path, overlay.Path)
	mergeString(&result.Extension, overlay.Extension)

	if overlay.MaxRetries != nil {
		result.MaxRetries = overlay.MaxRetries
	}
	if overlay.RetryDelay != nil {
		result.RetryDelay = overlay.RetryDelay
	}
	if overlay.Timeout != nil {
		result.Timeout = overlay.Timeout
	}
	if overlay.ContinueOnError != nil {
		result.ContinueOnError = overlay.ContinueOnError
	}

	return &result, nil
}

// MergeAll merges multiple configs in order (lowest precedence first).
// Returns an error if any version mismatch is found.
func MergeAll(configs []*Config) (*Config, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs to merge")
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		var err error
		result, err = Merge(result, configs[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// HierarchicalResult is the merged config plus per-layer load status.
type HierarchicalResult struct {
	Config *Config
	Layers []ConfigLayerInfo
}

// LoadHierarchical loads every discovered config layer that exists and
// merges them, lowest precedence first. Missing files are recorded as not
// loaded; a file that exists but fails to load is an error naming its layer.
func LoadHierarchical(opts DiscoverOptions) (*HierarchicalResult, error) {
	layers := DiscoverPaths(opts)

	configs := []*Config{{}}
	for i := range layers {
		cfg, err := Load(layers[i].Path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			layers[i].Err = err
			return nil, fmt.Errorf("%s config: %w", layers[i].Level, err)
		}
		layers[i].Loaded = true
		configs = append(configs, cfg)
	}

	merged, err := MergeAll(configs)
	if err != nil {
		return nil, err
	}
	return &HierarchicalResult{Config: merged, Layers: layers}, nil
}

func mergeVersion(base, overlay int, out *int) error {
	switch {
	case base == 0 && overlay == 0:
		*out = 0
	case base == 0:
		*out = overlay
	case overlay == 0:
		*out = base
	case base == overlay:
		*out = base
	default:
		return fmt.Errorf("config version mismatch: one layer declares version %d, another declares version %d — all config layers must agree on version", base, overlay)
	}
	return nil
}

func mergeString(dst *string, overlay string) {
	if overlay != "" {
		*dst = overlay
	}
}
