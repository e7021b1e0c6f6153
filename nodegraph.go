package nodegraph

// PortDirection is the polarity of a port. Edges always run from an output
// port to an input port.
type PortDirection string

const (
	Input  PortDirection = "input"
	Output PortDirection = "output"
)

// Valid reports whether d is one of the two known directions.
func (d PortDirection) Valid() bool {
	return d == Input || d == Output
}

// Port is a typed connection point owned by a node.
// ID is unique within the owning node.
type Port struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Direction PortDirection `json:"type"`
	DataType  string        `json:"dataType"`
	Required  bool          `json:"required,omitempty"`
}

// Node is a vertex on the canvas. Selected mirrors the selection state for
// rendering only; it is reset on export and in history snapshots.
type Node struct {
	ID         string         `json:"id"`
	Kind       string         `json:"type"`
	Title      string         `json:"title"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	ImageURL   string         `json:"image,omitempty"`
	Ports      []Port         `json:"ports"`
	Properties map[string]any `json:"properties,omitempty"`
	Selected   bool           `json:"selected,omitempty"`
}

// Edge connects an output port of one node to an input port of another.
type Edge struct {
	ID           string `json:"id"`
	SourceNodeID string `json:"sourceNodeId"`
	SourcePortID string `json:"sourcePortId"`
	TargetNodeID string `json:"targetNodeId"`
	TargetPortID string `json:"targetPortId"`
	Selected     bool   `json:"selected,omitempty"`
}

// Graph holds nodes and edges in insertion order together with the config
// they were created under.
type Graph struct {
	Nodes  []Node `json:"nodes"`
	Edges  []Edge `json:"edges"`
	Config Config `json:"config"`
}

// Port returns the port with the given id, or nil.
func (n *Node) Port(id string) *Port {
	for i := range n.Ports {
		if n.Ports[i].ID == id {
			return &n.Ports[i]
		}
	}
	return nil
}

// NodeIndex returns the position of the node in g.Nodes, or -1.
func (g *Graph) NodeIndex(id string) int {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	if i := g.NodeIndex(id); i >= 0 {
		return &g.Nodes[i]
	}
	return nil
}

// EdgeIndex returns the position of the edge in g.Edges, or -1.
func (g *Graph) EdgeIndex(id string) int {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return i
		}
	}
	return -1
}

// Edge returns the edge with the given id, or nil.
func (g *Graph) Edge(id string) *Edge {
	if i := g.EdgeIndex(id); i >= 0 {
		return &g.Edges[i]
	}
	return nil
}

// HasConnection reports whether an edge with the same endpoint tuple as e
// already exists. The edge id is not compared.
func (g *Graph) HasConnection(e Edge) bool {
	for _, x := range g.Edges {
		if x.SourceNodeID == e.SourceNodeID && x.SourcePortID == e.SourcePortID &&
			x.TargetNodeID == e.TargetNodeID && x.TargetPortID == e.TargetPortID {
			return true
		}
	}
	return false
}

// Touches reports whether the edge has nodeID at either end.
func (e Edge) Touches(nodeID string) bool {
	return e.SourceNodeID == nodeID || e.TargetNodeID == nodeID
}
