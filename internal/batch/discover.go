package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// DefaultExtensions are the template extensions processed in recursive mode.
var DefaultExtensions = []string{".tmpl", ".inc"}

// Matcher decides which files a recursive walk picks up. Patterns use
// doublestar syntax and are matched against slash-separated paths relative to
// the walk root.
type Matcher struct {
	Extensions []string // e.g. ".tmpl"; empty means DefaultExtensions
	Exclude    []string // e.g. "vendor/**", "**/*.min.tmpl"
}

// Validate checks that every pattern is well formed.
func (m Matcher) Validate() error {
	for _, ext := range m.extensions() {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: extension %q must start with '.'", ErrConfig, ext)
		}
		if !doublestar.ValidatePattern(extensionPattern(ext)) {
			return fmt.Errorf("%w: invalid extension %q", ErrConfig, ext)
		}
	}
	for _, pattern := range m.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: invalid exclude pattern %q", ErrConfig, pattern)
		}
	}
	return nil
}

// Match reports whether the file at rel should be processed.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	if m.Excluded(rel) {
		return false
	}
	for _, ext := range m.extensions() {
		if ok, _ := doublestar.Match(extensionPattern(ext), rel); ok {
			return true
		}
	}
	return false
}

// Excluded reports whether rel matches one of the exclude patterns.
func (m Matcher) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range m.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (m Matcher) extensions() []string {
	if len(m.Extensions) == 0 {
		return DefaultExtensions
	}
	return m.Extensions
}

func extensionPattern(ext string) string {
	return "**/*" + ext
}

// Discover walks root and returns every file m matches, in lexical order.
// Subdirectories are always descended into unless excluded. Unreadable
// entries below root are logged and skipped.
func Discover(ctx context.Context, root string, m Matcher, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: --recursive requires a valid directory path", ErrConfig)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if m.Excluded(rel) {
				logger.Debug("skipping excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !m.Match(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
