package editor

import (
	"fmt"

	"github.com/meikuraledutech/nodegraph"
)

// ExportGraph returns a deep copy of the graph with selection flags
// cleared.
func (e *Editor) ExportGraph() nodegraph.Graph {
	return e.snapshot()
}

// LoadGraph replaces all nodes and edges with a copy of g after checking
// its structure. A rejected graph leaves the editor untouched. The config
// and history are left alone; callers that import a document decide
// whether to Reconfigure and ClearHistory.
func (e *Editor) LoadGraph(g nodegraph.Graph) error {
	if err := g.Validate(); err != nil {
		return e.reject("load graph", fmt.Errorf("%w: %w", nodegraph.ErrInvalidDocument, err))
	}
	e.restore(g)
	e.log.Debug("graph loaded", "nodes", len(e.graph.Nodes), "edges", len(e.graph.Edges))
	e.emit(GraphChanged, SelectionChanged)
	return nil
}

// ClearGraph removes every node and edge and the selection. It is not
// recorded in history.
func (e *Editor) ClearGraph() {
	e.selection.Clear()
	e.graph.Nodes = []nodegraph.Node{}
	e.graph.Edges = []nodegraph.Edge{}
	e.draft = nil
	e.emit(GraphChanged, SelectionChanged)
}

// Undo reverts the most recent recorded action. It reports false when
// there is nothing to undo.
func (e *Editor) Undo() bool {
	a, ok := e.history.Undo(e.restore)
	if !ok {
		return false
	}
	e.log.Debug("undo", "kind", a.Kind, "description", a.Description)
	e.emit(GraphChanged, SelectionChanged, HistoryChanged)
	return true
}

// Redo reapplies the most recently undone action.
func (e *Editor) Redo() bool {
	a, ok := e.history.Redo(e.restore)
	if !ok {
		return false
	}
	e.log.Debug("redo", "kind", a.Kind, "description", a.Description)
	e.emit(GraphChanged, SelectionChanged, HistoryChanged)
	return true
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// UndoDescription describes what Undo would revert, or "".
func (e *Editor) UndoDescription() string { return e.history.UndoDescription() }

// RedoDescription describes what Redo would reapply, or "".
func (e *Editor) RedoDescription() string { return e.history.RedoDescription() }

// ClearHistory drops every undo and redo entry.
func (e *Editor) ClearHistory() {
	e.history.Clear()
	e.emit(HistoryChanged)
}

// Select selects a node or edge. Without additive the previous selection is
// replaced. Unknown ids are refused.
func (e *Editor) Select(id string, additive bool) bool {
	if !e.exists(id) {
		return false
	}
	e.selection.Select(id, additive)
	e.emit(SelectionChanged)
	return true
}

// ToggleSelect flips id in or out of the selection without touching the
// rest of it, as a modifier click does. Unknown ids are refused.
func (e *Editor) ToggleSelect(id string) bool {
	if !e.exists(id) {
		return false
	}
	e.selection.Toggle(id)
	e.emit(SelectionChanged)
	return true
}

// Deselect removes id from the selection.
func (e *Editor) Deselect(id string) {
	if !e.selection.Has(id) {
		return
	}
	e.selection.Deselect(id)
	e.emit(SelectionChanged)
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() {
	if e.selection.Len() == 0 {
		return
	}
	e.selection.Clear()
	e.emit(SelectionChanged)
}

// SelectedNodeIDs returns the selected node ids in selection order.
func (e *Editor) SelectedNodeIDs() []string {
	var out []string
	for _, id := range e.selection.IDs() {
		if e.graph.NodeIndex(id) >= 0 {
			out = append(out, id)
		}
	}
	return out
}

// SelectedEdgeIDs returns the selected edge ids in selection order.
func (e *Editor) SelectedEdgeIDs() []string {
	var out []string
	for _, id := range e.selection.IDs() {
		if e.graph.EdgeIndex(id) >= 0 {
			out = append(out, id)
		}
	}
	return out
}
