// Package adapter contains infrastructure adapters for the audit CLI.
package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// partialsDir marks a directory of page fragments rather than routable pages.
const partialsDir = "partials"

// DiscoverArgs selects the source files of an audit.
type DiscoverArgs struct {
	Root            m.Path
	Include         []string
	Exclude         []string
	IncludePartials bool
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover walks Root and returns the files matching the include globs and
	// none of the exclude globs, sorted.
	Discover(ctx context.Context, args DiscoverArgs) ([]m.Path, error)

	// ListDir returns the regular files directly inside dir, sorted.
	ListDir(ctx context.Context, dir m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover walks the root directory and filters files through doublestar globs
// matched against slash-separated paths relative to the root.
func (a *LocalSourceFSAdapter) Discover(ctx context.Context, args DiscoverArgs) ([]m.Path, error) {
	root, err := filepath.Abs(string(args.Root))
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", args.Root, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("pages root %s: %w", args.Root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("pages root %s is not a directory", args.Root)
	}

	var paths []m.Path

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			slog.Warn("Skipping unreadable path", "path", path, "error", walkErr)

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && !args.IncludePartials && d.Name() == partialsDir {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if matchAny(args.Include, rel) && !matchAny(args.Exclude, rel) {
			paths = append(paths, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

// matchAny tries the pattern against the relative path and, for patterns with
// a leading "**/", against the path with that prefix dropped so root-level
// files match as well. A malformed pattern matches nothing.
func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}

		if trimmed := strings.TrimPrefix(pattern, "**/"); trimmed != pattern {
			if ok, _ := doublestar.Match(trimmed, rel); ok {
				return true
			}
		}
	}

	return false
}

// ListDir returns the regular files directly inside dir, sorted by name.
func (a *LocalSourceFSAdapter) ListDir(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		paths = append(paths, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from discovery under the configured roots
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), content, perm)
}
