package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AhmedKhchai/vue-i18n-audit/internal/adapter"
	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

// catalogIndexName is the barrel file that re-exports every namespace.
const catalogIndexName = "index"

// literalCatalogExtensions hold an exported object literal.
var literalCatalogExtensions = map[string]bool{
	".ts":  true,
	".js":  true,
	".mjs": true,
}

// structuredCatalogExtensions are parsed directly (YAML is a superset of JSON).
var structuredCatalogExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// CatalogLoad is the outcome of reading a locale directory.
type CatalogLoad struct {
	Entries  []m.CatalogEntry
	Warnings []string
}

// CatalogLoader reads locale definition files into flat catalog entries.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, dir m.Path) CatalogLoad
}

type catalogLoader struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewCatalogLoader constructs a CatalogLoader backed by the filesystem adapter.
func NewCatalogLoader(fsAdapter adapter.SourceFSAdapter) CatalogLoader {
	return &catalogLoader{fsAdapter: fsAdapter}
}

// LoadCatalog never fails: unreadable directories and unparseable files turn
// into warnings and the scan continues.
func (l *catalogLoader) LoadCatalog(ctx context.Context, dir m.Path) CatalogLoad {
	var load CatalogLoad

	files, err := l.listCatalogFiles(ctx, dir)
	if err != nil {
		slog.Error("Failed to read catalog directory", "dir", dir, "error", err)
		load.Warnings = append(load.Warnings, fmt.Sprintf("cannot read catalog directory %s: %v", dir, err))

		return load
	}

	for _, file := range files {
		if ctx.Err() != nil {
			load.Warnings = append(load.Warnings, fmt.Sprintf("catalog loading interrupted: %v", ctx.Err()))
			return load
		}

		ext := strings.ToLower(filepath.Ext(string(file)))
		namespace := strings.TrimSuffix(filepath.Base(string(file)), filepath.Ext(string(file)))

		if namespace == catalogIndexName {
			continue
		}

		if !literalCatalogExtensions[ext] && !structuredCatalogExtensions[ext] {
			continue
		}

		content, err := l.fsAdapter.ReadFile(ctx, file)
		if err != nil {
			slog.Warn("Failed to read catalog file", "file", file, "error", err)
			load.Warnings = append(load.Warnings, fmt.Sprintf("cannot read catalog file %s: %v", file, err))

			continue
		}

		var (
			entries  []m.CatalogEntry
			parseErr error
		)

		if structuredCatalogExtensions[ext] {
			entries, parseErr = parseStructuredCatalog(namespace, file, content)
		} else {
			entries, parseErr = ParseCatalogSource(namespace, file, string(content))
		}

		if parseErr != nil {
			slog.Warn("Failed to parse catalog file", "file", file, "error", parseErr)
			load.Warnings = append(load.Warnings, fmt.Sprintf("cannot parse catalog file %s: %v", file, parseErr))

			continue
		}

		slog.Debug("Loaded catalog file", "file", file, "entries", len(entries))
		load.Entries = append(load.Entries, entries...)
	}

	return load
}

// listCatalogFiles lists a locale directory, or returns dir itself when it
// names a single catalog file.
func (l *catalogLoader) listCatalogFiles(ctx context.Context, dir m.Path) ([]m.Path, error) {
	info, err := l.fsAdapter.FileInfo(ctx, dir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []m.Path{dir}, nil
	}

	return l.fsAdapter.ListDir(ctx, dir)
}

// ParseCatalogSource extracts the object literal of a locale module and
// flattens it under namespace. The strict path normalizes the literal to JSON;
// when that fails a line scanner recovers simple key/value pairs.
func ParseCatalogSource(namespace string, file m.Path, source string) ([]m.CatalogEntry, error) {
	tree, strictErr := parseObjectLiteral(source)
	if strictErr != nil {
		slog.Debug("Strict catalog parse failed, using line scanner", "file", file, "error", strictErr)

		tree = scanObjectLiteral(source)
		if len(tree) == 0 {
			return nil, fmt.Errorf("no translatable entries found: %w", strictErr)
		}
	}

	return FlattenCatalog(namespace, file, tree), nil
}

func parseStructuredCatalog(namespace string, file m.Path, content []byte) ([]m.CatalogEntry, error) {
	var tree map[string]interface{}
	if err := yaml.Unmarshal(stripBOM(content), &tree); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}

	return FlattenCatalog(namespace, file, tree), nil
}

// FlattenCatalog turns a nested tree into dotted keys prefixed by namespace.
// Only string leaves survive. Sibling keys are visited in sorted order so the
// result does not depend on map iteration.
func FlattenCatalog(namespace string, file m.Path, tree map[string]interface{}) []m.CatalogEntry {
	var entries []m.CatalogEntry

	flattenInto(namespace, file, tree, &entries)

	return entries
}

func flattenInto(prefix string, file m.Path, tree map[string]interface{}, out *[]m.CatalogEntry) {
	keys := make([]string, 0, len(tree))
	for key := range tree {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch value := tree[key].(type) {
		case string:
			*out = append(*out, m.CatalogEntry{
				Key:   full,
				Value: value,
				Empty: strings.TrimSpace(value) == "",
				File:  file,
			})
		case map[string]interface{}:
			flattenInto(full, file, value, out)
		case map[interface{}]interface{}:
			flattenInto(full, file, stringKeyed(value), out)
		}
	}
}

func stringKeyed(in map[interface{}]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for key, value := range in {
		out[fmt.Sprint(key)] = value
	}

	return out
}

// Catalog is the key to entry lookup table. Later entries for a key replace
// earlier ones.
type Catalog struct {
	entries    map[string]m.CatalogEntry
	duplicates []string
}

// NewCatalog folds entries into a lookup table in order.
func NewCatalog(entries []m.CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[string]m.CatalogEntry, len(entries))}

	for _, entry := range entries {
		if _, exists := c.entries[entry.Key]; exists {
			c.duplicates = append(c.duplicates, entry.Key)
		}

		c.entries[entry.Key] = entry
	}

	return c
}

// Lookup returns the entry for key.
func (c *Catalog) Lookup(key string) (m.CatalogEntry, bool) {
	entry, ok := c.entries[key]
	return entry, ok
}

// Len returns the number of distinct keys.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Duplicates lists keys that were defined more than once, in load order.
func (c *Catalog) Duplicates() []string {
	return c.duplicates
}

func stripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}

	return b
}
