package nodegraph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() Graph {
	return Graph{
		Nodes: []Node{
			{
				ID: "a", Kind: "source", Title: "A", X: 10, Y: 20, Width: 120, Height: 80,
				Ports:      []Port{{ID: "out", Name: "out", Direction: Output, DataType: "number"}},
				Properties: map[string]any{"value": 3.0, "tags": []any{"x", "y"}},
				Selected:   true,
			},
			{
				ID: "b", Kind: "sink", Title: "B", X: 300, Y: 20, Width: 120, Height: 80,
				ImageURL: "https://example.com/b.png",
				Ports:    []Port{{ID: "in", Name: "in", Direction: Input, Required: true}},
			},
		},
		Edges:  []Edge{{ID: "e1", SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "b", TargetPortID: "in", Selected: true}},
		Config: DefaultConfig(),
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	g := sampleGraph()

	data, err := MarshalDocument(g)
	require.NoError(t, err)

	got, err := ParseDocument(data)
	require.NoError(t, err)

	if diff := cmp.Diff(g.Normalized(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalDocumentClearsSelection(t *testing.T) {
	data, err := MarshalDocument(sampleGraph())
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"selected"`)
	assert.Contains(t, string(data), `"sourceNodeId": "a"`)
	assert.Contains(t, string(data), `"maxNodes": 100`)
}

func TestParseDocumentRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"malformed", `{"nodes": [`, ErrInvalidDocument},
		{"missing nodes", `{"edges": [], "config": {}}`, ErrInvalidDocument},
		{"missing edges", `{"nodes": [], "config": {}}`, ErrInvalidDocument},
		{"missing config", `{"nodes": [], "edges": []}`, ErrInvalidDocument},
		{"nodes not array", `{"nodes": {}, "edges": [], "config": {}}`, ErrInvalidDocument},
		{"negative cap", `{"nodes": [], "edges": [], "config": {"maxNodes": -1}}`, ErrInvalidConfig},
		{
			"dangling edge",
			`{"nodes": [], "edges": [{"id": "e", "sourceNodeId": "a", "sourcePortId": "o", "targetNodeId": "b", "targetPortId": "i"}], "config": {}}`,
			ErrNodeNotFound,
		},
		{
			"duplicate node",
			`{"nodes": [{"id": "a", "ports": []}, {"id": "a", "ports": []}], "edges": [], "config": {}}`,
			ErrDuplicateNode,
		},
		{
			"reversed edge",
			`{"nodes": [
				{"id": "a", "ports": [{"id": "o", "name": "o", "type": "output"}]},
				{"id": "b", "ports": [{"id": "i", "name": "i", "type": "input"}]}
			], "edges": [{"id": "e", "sourceNodeId": "b", "sourcePortId": "i", "targetNodeId": "a", "targetPortId": "o"}], "config": {}}`,
			ErrDirectionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument), "want ErrInvalidDocument, got %v", err)
			assert.True(t, errors.Is(err, tt.want), "want %v, got %v", tt.want, err)
		})
	}
}

func TestParseDocumentDefaults(t *testing.T) {
	doc := `{"nodes": [{"id": "a", "type": "note", "title": "A", "x": 1, "y": 2, "ports": [], "selected": true}], "edges": [], "config": {"maxNodes": 5}}`

	g, err := ParseDocument([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Config.MaxNodes)
	assert.Equal(t, DefaultMaxEdges, g.Config.MaxEdges)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, float64(DefaultNodeWidth), g.Nodes[0].Width)
	assert.Equal(t, float64(DefaultNodeHeight), g.Nodes[0].Height)
	assert.False(t, g.Nodes[0].Selected)
	assert.NotNil(t, g.Edges)
}

func TestParseDocumentKeepsZeroCaps(t *testing.T) {
	doc := `{"nodes": [], "edges": [], "config": {"maxNodes": 0, "maxEdges": 0, "nodeDefaults": {"width": 100, "height": 50}}}`

	g, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Config.MaxNodes)
	assert.Equal(t, 0, g.Config.MaxEdges)

	data, err := MarshalDocument(g)
	require.NoError(t, err)
	again, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, g.Config, again.Config)
}
