package editor

import (
	"fmt"
	"slices"

	"github.com/meikuraledutech/nodegraph"
	"github.com/meikuraledutech/nodegraph/history"
)

// NodePatch lists the fields to change on a node. Nil fields are left
// alone. Ports and Properties replace the current values wholesale.
type NodePatch struct {
	Kind       *string          `json:"type,omitempty"`
	Title      *string          `json:"title,omitempty"`
	X          *float64         `json:"x,omitempty"`
	Y          *float64         `json:"y,omitempty"`
	Width      *float64         `json:"width,omitempty"`
	Height     *float64         `json:"height,omitempty"`
	ImageURL   *string          `json:"image,omitempty"`
	Ports      []nodegraph.Port `json:"ports,omitempty"`
	Properties map[string]any   `json:"properties,omitempty"`
}

// Moves reports whether the patch changes the node position.
func (p NodePatch) Moves() bool {
	return p.X != nil || p.Y != nil
}

// AddNode inserts a copy of n under a fresh id and returns that id. Ports
// without an id get one; unset sizes take the configured defaults.
func (e *Editor) AddNode(n nodegraph.Node) (string, error) {
	return e.addNode(n, history.AddNode, fmt.Sprintf("Add node %q", label(&n)))
}

// addNode is shared by AddNode and DuplicateNode, which differ only in the
// history entry they leave.
func (e *Editor) addNode(n nodegraph.Node, kind history.Kind, description string) (string, error) {
	if len(e.graph.Nodes) >= e.cfg.MaxNodes {
		return "", e.reject("add node", fmt.Errorf("%w: %d nodes allowed", nodegraph.ErrLimitExceeded, e.cfg.MaxNodes))
	}

	n = n.Clone()
	n.ID = e.newID()
	n.Selected = false
	if n.Ports == nil {
		n.Ports = []nodegraph.Port{}
	}
	for i := range n.Ports {
		if n.Ports[i].ID == "" {
			n.Ports[i].ID = e.newID()
		}
	}
	if err := nodegraph.CheckPorts(n.Ports); err != nil {
		return "", e.reject("add node", err)
	}
	if n.Width <= 0 {
		n.Width = e.cfg.NodeDefaults.Width
	}
	if n.Height <= 0 {
		n.Height = e.cfg.NodeDefaults.Height
	}

	before := e.snapshot()
	e.graph.Nodes = append(e.graph.Nodes, n)
	e.commit(kind, description, before)
	return n.ID, nil
}

// RemoveNode deletes a node together with every edge touching it, as one
// history entry.
func (e *Editor) RemoveNode(id string) error {
	i := e.graph.NodeIndex(id)
	if i < 0 {
		return e.reject("remove node", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, id))
	}
	before := e.snapshot()
	description := fmt.Sprintf("Remove node %q", label(&e.graph.Nodes[i]))

	selChanged := e.selection.Has(id)
	e.selection.Deselect(id)
	for _, ed := range e.graph.Edges {
		if ed.Touches(id) && e.selection.Has(ed.ID) {
			e.selection.Deselect(ed.ID)
			selChanged = true
		}
	}

	e.graph.Edges = slices.DeleteFunc(e.graph.Edges, func(ed nodegraph.Edge) bool {
		return ed.Touches(id)
	})
	e.graph.Nodes = slices.Delete(e.graph.Nodes, i, i+1)
	if e.draft != nil && e.draft.SourceNodeID == id {
		e.draft = nil
	}

	e.commit(history.RemoveNode, description, before)
	if selChanged {
		e.emit(SelectionChanged)
	}
	return nil
}

// UpdateNode merges patch into a node. Only position changes are recorded
// in history; other field updates apply silently so incidental bookkeeping
// does not flood the undo stack. Replacing ports is refused if an existing
// edge would lose its endpoint or its polarity.
func (e *Editor) UpdateNode(id string, patch NodePatch) error {
	n := e.graph.Node(id)
	if n == nil {
		return e.reject("update node", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, id))
	}

	var ports []nodegraph.Port
	if patch.Ports != nil {
		ports = slices.Clone(patch.Ports)
		for i := range ports {
			if ports[i].ID == "" {
				ports[i].ID = e.newID()
			}
		}
		if err := nodegraph.CheckPorts(ports); err != nil {
			return e.reject("update node", err)
		}
		if err := e.checkPortsKeepEdges(id, ports); err != nil {
			return e.reject("update node", err)
		}
	}

	var before nodegraph.Graph
	if patch.Moves() {
		before = e.snapshot()
	}

	if patch.Kind != nil {
		n.Kind = *patch.Kind
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.X != nil {
		n.X = *patch.X
	}
	if patch.Y != nil {
		n.Y = *patch.Y
	}
	if patch.Width != nil {
		n.Width = *patch.Width
		if n.Width <= 0 {
			n.Width = e.cfg.NodeDefaults.Width
		}
	}
	if patch.Height != nil {
		n.Height = *patch.Height
		if n.Height <= 0 {
			n.Height = e.cfg.NodeDefaults.Height
		}
	}
	if patch.ImageURL != nil {
		n.ImageURL = *patch.ImageURL
	}
	if ports != nil {
		n.Ports = ports
	}
	if patch.Properties != nil {
		n.Properties = nodegraph.CloneValue(patch.Properties).(map[string]any)
	}

	if patch.Moves() {
		e.commit(history.MoveNode, fmt.Sprintf("Move node %q", label(n)), before)
		return nil
	}
	e.emit(GraphChanged)
	return nil
}

func (e *Editor) checkPortsKeepEdges(nodeID string, ports []nodegraph.Port) error {
	candidate := nodegraph.Node{ID: nodeID, Ports: ports}
	for _, ed := range e.graph.Edges {
		if ed.SourceNodeID == nodeID {
			p := candidate.Port(ed.SourcePortID)
			if p == nil {
				return fmt.Errorf("%w: edge %q needs port %q", nodegraph.ErrPortNotFound, ed.ID, ed.SourcePortID)
			}
			if p.Direction != nodegraph.Output {
				return fmt.Errorf("%w: edge %q leaves port %q", nodegraph.ErrDirectionMismatch, ed.ID, p.ID)
			}
		}
		if ed.TargetNodeID == nodeID {
			p := candidate.Port(ed.TargetPortID)
			if p == nil {
				return fmt.Errorf("%w: edge %q needs port %q", nodegraph.ErrPortNotFound, ed.ID, ed.TargetPortID)
			}
			if p.Direction != nodegraph.Input {
				return fmt.Errorf("%w: edge %q enters port %q", nodegraph.ErrDirectionMismatch, ed.ID, p.ID)
			}
		}
	}
	return nil
}

// UpdateNodeProperty sets one property. Property edits are always recorded.
func (e *Editor) UpdateNodeProperty(nodeID, key string, value any) error {
	n := e.graph.Node(nodeID)
	if n == nil {
		return e.reject("update property", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, nodeID))
	}
	before := e.snapshot()
	if n.Properties == nil {
		n.Properties = make(map[string]any)
	}
	n.Properties[key] = nodegraph.CloneValue(value)
	e.commit(history.UpdateProperty, fmt.Sprintf("Set %s on %q", key, label(n)), before)
	return nil
}

// UpdateNodeImage sets the node image url and records it.
func (e *Editor) UpdateNodeImage(nodeID, url string) error {
	n := e.graph.Node(nodeID)
	if n == nil {
		return e.reject("update image", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, nodeID))
	}
	before := e.snapshot()
	n.ImageURL = url
	e.commit(history.UpdateProperty, fmt.Sprintf("Update image of %q", label(n)), before)
	return nil
}

// DuplicateNode copies a node with fresh node and port ids, shifted by
// DuplicateOffset and titled with a " (Copy)" suffix. Edges are not copied.
func (e *Editor) DuplicateNode(id string) (string, error) {
	src := e.graph.Node(id)
	if src == nil {
		return "", e.reject("duplicate node", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, id))
	}
	c := src.Clone()
	c.X += DuplicateOffset
	c.Y += DuplicateOffset
	c.Title += " (Copy)"
	for i := range c.Ports {
		c.Ports[i].ID = ""
	}
	return e.addNode(c, history.DuplicateNode, fmt.Sprintf("Duplicate node %q", label(src)))
}

// DeleteSelectedNodes removes every selected node and all edges touching
// them as a single history entry, then clears the selection. It returns
// the number of nodes removed.
func (e *Editor) DeleteSelectedNodes() int {
	doomed := make(map[string]bool)
	for _, id := range e.selection.IDs() {
		if e.graph.NodeIndex(id) >= 0 {
			doomed[id] = true
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	before := e.snapshot()
	e.selection.Clear()
	e.graph.Edges = slices.DeleteFunc(e.graph.Edges, func(ed nodegraph.Edge) bool {
		return doomed[ed.SourceNodeID] || doomed[ed.TargetNodeID]
	})
	e.graph.Nodes = slices.DeleteFunc(e.graph.Nodes, func(n nodegraph.Node) bool {
		return doomed[n.ID]
	})
	if e.draft != nil && doomed[e.draft.SourceNodeID] {
		e.draft = nil
	}

	description := fmt.Sprintf("Delete %d selected nodes", len(doomed))
	if len(doomed) == 1 {
		description = "Delete 1 selected node"
	}
	e.commit(history.DeleteSelected, description, before)
	e.emit(SelectionChanged)
	return len(doomed)
}
