package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultExtension is the chart file extension, without the dot.
const DefaultExtension = "ksh"

// FS abstracts the filesystem operations discovery needs.
type FS interface {
	Walk(root string, fn filepath.WalkFunc) error
	Stat(path string) (os.FileInfo, error)
}

// OSFS implements FS using the real operating system filesystem.
type OSFS struct{}

func (OSFS) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Walk walks the tree under root. A symlinked root is followed; entries
// are reported under root as given, not under the link target. Links
// below the root are not followed.
func (OSFS) Walk(root string, fn filepath.WalkFunc) error {
	target, err := filepath.EvalSymlinks(root)
	if err != nil || target == filepath.Clean(root) {
		return filepath.Walk(root, fn)
	}
	return filepath.Walk(target, func(path string, fi os.FileInfo, walkErr error) error {
		if rel, err := filepath.Rel(target, path); err == nil {
			path = filepath.Join(root, rel)
		}
		return fn(path, fi, walkErr)
	})
}

// Options configures Find.
type Options struct {
	Extension string // without leading dot; empty means DefaultExtension
	FS        FS     // nil means OSFS
	Logger    zerolog.Logger
}

// Candidate is a discovered chart file.
type Candidate struct {
	Path string
	Size int64
}

// Find returns every regular file under root whose extension matches, in
// lexicographic path order. Entries that cannot be read are skipped. root
// may itself be a single chart file.
func Find(root string, opts Options) ([]Candidate, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = OSFS{}
	}
	ext := "." + strings.TrimPrefix(opts.Extension, ".")
	if ext == "." {
		ext = "." + DefaultExtension
	}

	if _, err := fsys.Stat(root); err != nil {
		return nil, fmt.Errorf("path '%s' does not exist: %w", root, err)
	}

	var found []Candidate
	err := fsys.Walk(root, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			opts.Logger.Debug().Err(walkErr).Str("path", path).Msg("skipping unreadable entry")
			if fi != nil && fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}
		found = append(found, Candidate{Path: path, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	slices.SortFunc(found, func(a, b Candidate) int {
		return strings.Compare(a.Path, b.Path)
	})
	return found, nil
}

// Paths returns the paths of candidates, preserving order.
func Paths(cands []Candidate) []string {
	paths := make([]string, len(cands))
	for i, c := range cands {
		paths[i] = c.Path
	}
	return paths
}

// DisplayPath returns path relative to base when path lies under it,
// otherwise path unchanged.
func DisplayPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
