package editor

import (
	"fmt"

	"github.com/meikuraledutech/nodegraph"
)

// Connection is an edge being dragged out of an output port. X and Y track
// the pointer in world coordinates.
type Connection struct {
	SourceNodeID string  `json:"sourceNodeId"`
	SourcePortID string  `json:"sourcePortId"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

// BeginConnection starts dragging a new edge from an output port.
func (e *Editor) BeginConnection(nodeID, portID string) error {
	n := e.graph.Node(nodeID)
	if n == nil {
		return e.reject("begin connection", fmt.Errorf("%w: %q", nodegraph.ErrNodeNotFound, nodeID))
	}
	p := n.Port(portID)
	if p == nil {
		return e.reject("begin connection", fmt.Errorf("%w: %q on node %q", nodegraph.ErrPortNotFound, portID, nodeID))
	}
	if p.Direction != nodegraph.Output {
		return e.reject("begin connection", fmt.Errorf("%w: port %q is an input", nodegraph.ErrDirectionMismatch, portID))
	}
	e.draft = &Connection{SourceNodeID: nodeID, SourcePortID: portID, X: n.X + n.Width, Y: n.Y + n.Height/2}
	e.emit(ConnectionChanged)
	return nil
}

// MoveConnection updates the loose end of the pending edge from a canvas
// pixel position.
func (e *Editor) MoveConnection(sx, sy float64) {
	if e.draft == nil {
		return
	}
	e.draft.X, e.draft.Y = e.view.ScreenToWorld(sx, sy)
	e.emit(ConnectionChanged)
}

// FinishConnection drops the pending edge on an input port. The pending
// state is reset whether or not the edge is accepted.
func (e *Editor) FinishConnection(nodeID, portID string) (string, error) {
	if e.draft == nil {
		return "", ErrNoPendingConnection
	}
	d := *e.draft
	e.CancelConnection()
	return e.AddEdge(nodegraph.Edge{
		SourceNodeID: d.SourceNodeID,
		SourcePortID: d.SourcePortID,
		TargetNodeID: nodeID,
		TargetPortID: portID,
	})
}

// CancelConnection abandons the pending edge. Releasing outside a port,
// clicking the canvas and the pointer leaving the canvas all end here.
func (e *Editor) CancelConnection() {
	if e.draft == nil {
		return
	}
	e.draft = nil
	e.emit(ConnectionChanged)
}

// PendingConnection returns the edge being dragged, if any.
func (e *Editor) PendingConnection() (Connection, bool) {
	if e.draft == nil {
		return Connection{}, false
	}
	return *e.draft, true
}
