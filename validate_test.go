package nodegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEdgeOrder(t *testing.T) {
	g := sampleGraph()
	g.Edges = nil

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"unknown source", Edge{SourceNodeID: "x", SourcePortID: "out", TargetNodeID: "b", TargetPortID: "in"}, ErrNodeNotFound},
		{"unknown target", Edge{SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "x", TargetPortID: "in"}, ErrNodeNotFound},
		{"unknown source port", Edge{SourceNodeID: "a", SourcePortID: "nope", TargetNodeID: "b", TargetPortID: "in"}, ErrPortNotFound},
		{"unknown target port", Edge{SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "b", TargetPortID: "nope"}, ErrPortNotFound},
		{"reversed", Edge{SourceNodeID: "b", SourcePortID: "in", TargetNodeID: "a", TargetPortID: "out"}, ErrDirectionMismatch},
		{"output to output", Edge{SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "a", TargetPortID: "out"}, ErrDirectionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, g.CheckEdge(tt.edge), tt.want)
		})
	}

	ok := Edge{SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "b", TargetPortID: "in"}
	require.NoError(t, g.CheckEdge(ok))
	g.Edges = append(g.Edges, Edge{ID: "e", SourceNodeID: "a", SourcePortID: "out", TargetNodeID: "b", TargetPortID: "in"})
	assert.ErrorIs(t, g.CheckEdge(ok), ErrDuplicateEdge)
}

func TestCheckPorts(t *testing.T) {
	require.NoError(t, CheckPorts(nil))
	require.NoError(t, CheckPorts([]Port{{ID: "a", Direction: Input}, {ID: "b", Direction: Output}, {Direction: Input}}))

	assert.ErrorIs(t, CheckPorts([]Port{{ID: "a", Direction: Input}, {ID: "a", Direction: Output}}), ErrInvalidPort)
	assert.ErrorIs(t, CheckPorts([]Port{{ID: "a", Direction: "sideways"}}), ErrInvalidPort)
}

func TestGraphValidate(t *testing.T) {
	g := sampleGraph()
	require.NoError(t, g.Validate())

	noPortID := sampleGraph()
	noPortID.Nodes[0].Ports[0].ID = ""
	assert.ErrorIs(t, noPortID.Validate(), ErrInvalidPort)

	dupEdgeID := sampleGraph()
	dupEdgeID.Edges = append(dupEdgeID.Edges, dupEdgeID.Edges[0])
	assert.ErrorIs(t, dupEdgeID.Validate(), ErrDuplicateEdge)

	dupTuple := sampleGraph()
	e := dupTuple.Edges[0]
	e.ID = "e2"
	dupTuple.Edges = append(dupTuple.Edges, e)
	assert.ErrorIs(t, dupTuple.Validate(), ErrDuplicateEdge)
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("flow_1-a"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("../etc"))
	assert.False(t, ValidName("has space"))
	assert.False(t, ValidName(string(make([]byte, 65))))
}
