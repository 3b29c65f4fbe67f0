package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/AhmedKhchai/vue-i18n-audit/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func relPaths(t *testing.T, root string, paths []m.Path) []string {
	t.Helper()

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)

	rels := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, err := filepath.Rel(absRoot, string(path))
		require.NoError(t, err)

		rels = append(rels, filepath.ToSlash(rel))
	}

	return rels
}

func newSourceTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range []string{
		"App.vue",
		"pages/Home.vue",
		"pages/admin/Users.vue",
		"pages/partials/Footer.vue",
		"pages/util.ts",
		"node_modules/lib/Widget.vue",
		"dist/App.vue",
	} {
		writeTestFile(t, filepath.Join(root, filepath.FromSlash(name)), "<template></template>\n")
	}

	return root
}

func TestLocalSourceFSAdapter_Discover(t *testing.T) {
	tests := []struct {
		name string
		args DiscoverArgs
		want []string
	}{
		{
			name: "include with default excludes",
			args: DiscoverArgs{
				Include:         []string{"**/*.vue"},
				Exclude:         []string{"**/node_modules/**", "**/dist/**"},
				IncludePartials: true,
			},
			want: []string{"App.vue", "pages/Home.vue", "pages/admin/Users.vue", "pages/partials/Footer.vue"},
		},
		{
			name: "skips partials",
			args: DiscoverArgs{
				Include: []string{"**/*.vue"},
				Exclude: []string{"**/node_modules/**", "**/dist/**"},
			},
			want: []string{"App.vue", "pages/Home.vue", "pages/admin/Users.vue"},
		},
		{
			name: "several includes",
			args: DiscoverArgs{
				Include:         []string{"pages/*.vue", "pages/*.ts"},
				IncludePartials: true,
			},
			want: []string{"pages/Home.vue", "pages/util.ts"},
		},
		{
			name: "exclude a subtree",
			args: DiscoverArgs{
				Include:         []string{"pages/**/*.vue"},
				Exclude:         []string{"pages/admin/**"},
				IncludePartials: true,
			},
			want: []string{"pages/Home.vue", "pages/partials/Footer.vue"},
		},
		{
			name: "malformed pattern matches nothing",
			args: DiscoverArgs{Include: []string{"[unclosed"}, IncludePartials: true},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newSourceTree(t)

			args := tt.args
			args.Root = m.Path(root)

			paths, err := NewLocalSourceFSAdapter().Discover(context.Background(), args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(t, root, paths))

			for _, path := range paths {
				assert.True(t, filepath.IsAbs(string(path)), path)
			}
		})
	}
}

func TestLocalSourceFSAdapter_Discover_InvalidRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.vue")
	writeTestFile(t, file, "")

	a := NewLocalSourceFSAdapter()

	_, err := a.Discover(context.Background(), DiscoverArgs{Root: m.Path(filepath.Join(root, "missing")), Include: []string{"**/*"}})
	assert.Error(t, err)

	_, err = a.Discover(context.Background(), DiscoverArgs{Root: m.Path(file), Include: []string{"**/*"}})
	assert.ErrorContains(t, err, "not a directory")
}

func TestLocalSourceFSAdapter_Discover_Cancelled(t *testing.T) {
	root := newSourceTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalSourceFSAdapter().Discover(ctx, DiscoverArgs{Root: m.Path(root), Include: []string{"**/*.vue"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_ListDir(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.json"), "{}")
	writeTestFile(t, filepath.Join(root, "a.ts"), "export default {}")
	writeTestFile(t, filepath.Join(root, "nested", "c.ts"), "export default {}")

	paths, err := NewLocalSourceFSAdapter().ListDir(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.ts")),
		m.Path(filepath.Join(root, "b.json")),
	}, paths)

	_, err = NewLocalSourceFSAdapter().ListDir(context.Background(), m.Path(filepath.Join(root, "missing")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()
	ctx := context.Background()

	path := m.Path(filepath.Join(t.TempDir(), "reports", "nested", "out.json"))

	require.NoError(t, a.WriteFile(ctx, path, []byte(`{"ok":true}`), 0o644))

	content, err := a.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(content))

	info, err := a.FileInfo(ctx, path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len(content)), info.Size())

	dirInfo, err := a.FileInfo(ctx, m.Path(filepath.Dir(string(path))))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestLocalSourceFSAdapter_CancelledContext(t *testing.T) {
	a := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "x.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, a.WriteFile(ctx, path, []byte("x"), 0o644), context.Canceled)

	_, err := a.ReadFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = a.FileInfo(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = a.ListDir(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
