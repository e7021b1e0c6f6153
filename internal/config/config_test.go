package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meikuraledutech/nodegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, nodegraph.DefaultConfig(), cfg.Graph)
	assert.Equal(t, 20, cfg.History.Limit)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, filepath.Join(ConfigDir(), "graphs"), cfg.Store.Dir)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[graph]
max_nodes = 10

[graph.node_defaults]
width = 200.0

[history]
limit = 50

[server]
addr = ":8080"

[store]
backend = "file"
dir = "/tmp/graphs"

[log]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Graph.MaxNodes)
	assert.Equal(t, nodegraph.DefaultMaxEdges, cfg.Graph.MaxEdges)
	assert.Equal(t, 200.0, cfg.Graph.NodeDefaults.Width)
	assert.Equal(t, float64(nodegraph.DefaultNodeHeight), cfg.Graph.NodeDefaults.Height)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 200.0, cfg.Minimap.Width)
}

func TestLoadKeepsZeroCap(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[graph]\nmax_edges = 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Graph.MaxEdges)
	assert.Equal(t, nodegraph.DefaultMaxNodes, cfg.Graph.MaxNodes)
}

func TestLoadPostgresNeedsURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\nbackend = \"postgres\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/nodegraph")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/nodegraph", cfg.Store.DatabaseURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	dir := t.TempDir()

	for name, body := range map[string]string{
		"negative cap": "[graph]\nmax_edges = -1\n",
		"backend":      "[store]\nbackend = \"s3\"\n",
		"minimap":      "[minimap]\nwidth = -5.0\n",
		"syntax":       "[graph\n",
	} {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Server.Addr = ":9999"
	want.Graph.MaxNodes = 7
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
