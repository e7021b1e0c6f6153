package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/nodegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to NODEGRAPH_TEST_DATABASE_URL or skips.
func newTestStore(t *testing.T) *PGStore {
	t.Helper()
	dbURL := os.Getenv("NODEGRAPH_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("NODEGRAPH_TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := New(pool)
	require.NoError(t, s.DropSchema(ctx))
	require.NoError(t, s.CreateSchema(ctx))
	t.Cleanup(func() { s.DropSchema(context.Background()) })
	return s
}

func TestSaveAndGetGraph(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g := nodegraph.Graph{
		Nodes: []nodegraph.Node{
			{ID: "a", Kind: "source", Title: "A", Width: 120, Height: 80, Ports: []nodegraph.Port{{ID: "out", Name: "out", Direction: nodegraph.Output}}},
			{ID: "b", Kind: "sink", Title: "B", Width: 120, Height: 80, Ports: []nodegraph.Port{{ID: "in", Name: "in", Direction: nodegraph.Input}}},
		},
		Edges:  []nodegraph.Edge{{ID: "e", SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "b", TargetPortID: "in"}},
		Config: nodegraph.DefaultConfig(),
	}
	require.NoError(t, s.SaveGraph(ctx, "flow", &g))

	got, err := s.GetGraph(ctx, "flow")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Nodes, 2)
	assert.Len(t, got.Edges, 1)

	names, err := s.ListGraphs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"flow"}, names)

	require.NoError(t, s.DeleteGraph(ctx, "flow"))
	got, err = s.GetGraph(ctx, "flow")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPreferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetPreference(ctx, "theme", "dark"))
	require.NoError(t, s.SetPreference(ctx, "theme", "light"))

	v, ok, err := s.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}
