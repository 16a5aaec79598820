package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
)

// Config controls how overlay catalog files are found
type Config struct {
	Includes  []string // Glob patterns for overlay YAML files: ["catalog.d/**/*.yaml"]
	GitIgnore string   // Path to a .gitignore applied to relative matches (default: ".gitignore")
}

// LoadStats reports what overlay discovery did
type LoadStats struct {
	FilesDiscovered int // Files matched by the include patterns
	FilesLoaded     int // Files merged into the catalog
	FilesSkipped    int // Files excluded by .gitignore
}

// Load returns the built-in catalog extended by every overlay file matched by
// config.Includes. Overlay entries replace built-in entries with the same id.
// A broken overlay file does not stop the others from loading; all failures are
// returned together and the catalog is still usable.
func Load(config Config) (*Catalog, LoadStats, error) {
	var stats LoadStats
	if len(config.Includes) == 0 {
		return Default(), stats, nil
	}

	files, stats, err := expandIncludes(config)
	if err != nil {
		return Default(), stats, err
	}

	b := newBuilder()
	b.seed(Default())

	var errs error
	for _, path := range files {
		// #nosec G304 - path comes from trusted configuration
		data, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read overlay: %w", err))
			continue
		}

		// Merge into a scratch copy first so a bad file leaves no partial entries
		scratch := newBuilder()
		scratch.seed(b.build())
		if err := scratch.merge(data, path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		b = scratch
		stats.FilesLoaded++
	}

	return b.build(), stats, errs
}

// expandIncludes resolves glob patterns to a sorted, de-duplicated file list
func expandIncludes(config Config) ([]string, LoadStats, error) {
	var stats LoadStats
	seen := make(map[string]bool)
	var files []string

	gi := loadGitIgnore(config.GitIgnore)

	for _, pattern := range config.Includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(gi, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// loadGitIgnore compiles the ignore file, degrading to nil when it is missing
func loadGitIgnore(path string) *ignore.GitIgnore {
	if path == "" {
		path = ".gitignore"
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a matched overlay is gitignored.
// Absolute paths are outside the project and never filtered.
func shouldSkipFile(gi *ignore.GitIgnore, path string) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(path)
}
