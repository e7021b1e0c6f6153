package editor

import (
	"fmt"
	"slices"

	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/history"
)

// AddEdge connects an output port to an input port and returns the new
// edge id. Checks run in a fixed order and the first failure is returned:
// edge cap, endpoint nodes, endpoint ports, direction, duplicate.
func (e *Editor) AddEdge(ed nodegraph.Edge) (string, error) {
	if len(e.graph.Edges) >= e.cfg.MaxEdges {
		return "", e.reject("add edge", fmt.Errorf("%w: %d edges allowed", nodegraph.ErrLimitExceeded, e.cfg.MaxEdges))
	}
	if err := e.graph.CheckEdge(ed); err != nil {
		return "", e.reject("add edge", err)
	}

	ed.ID = e.newID()
	ed.Selected = false
	description := fmt.Sprintf("Connect %s to %s",
		portLabel(e.graph.Node(ed.SourceNodeID), ed.SourcePortID),
		portLabel(e.graph.Node(ed.TargetNodeID), ed.TargetPortID))

	before := e.snapshot()
	e.graph.Edges = append(e.graph.Edges, ed)
	e.commit(history.AddEdge, description, before)
	return ed.ID, nil
}

// RemoveEdge deletes an edge and reports whether it existed. Removing an
// unknown edge changes nothing and leaves no history entry.
func (e *Editor) RemoveEdge(id string) bool {
	i := e.graph.EdgeIndex(id)
	if i < 0 {
		return false
	}
	before := e.snapshot()

	selChanged := e.selection.Has(id)
	e.selection.Deselect(id)
	e.graph.Edges = slices.Delete(e.graph.Edges, i, i+1)

	e.commit(history.RemoveEdge, "Remove connection", before)
	if selChanged {
		e.emit(SelectionChanged)
	}
	return true
}

// EdgesOf returns copies of the edges touching a node.
func (e *Editor) EdgesOf(nodeID string) []nodegraph.Edge {
	var out []nodegraph.Edge
	for _, ed := range e.graph.Edges {
		if ed.Touches(nodeID) {
			out = append(out, ed)
		}
	}
	return out
}
