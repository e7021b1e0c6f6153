package nodegraph

import "fmt"

// CheckPorts verifies that a port list has no duplicate ids and only known
// directions. Ports without an id are skipped; callers assign ids first.
func CheckPorts(ports []Port) error {
	seen := make(map[string]bool, len(ports))
	for _, p := range ports {
		if !p.Direction.Valid() {
			return fmt.Errorf("%w: port %q has direction %q", ErrInvalidPort, p.Name, p.Direction)
		}
		if p.ID == "" {
			continue
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate port id %q", ErrInvalidPort, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// CheckEdge runs the structural edge checks in order: endpoint nodes exist,
// endpoint ports exist, source is an output and target an input, and no edge
// with the same endpoint tuple exists. The first failing check wins. Caps
// are not checked here.
func (g *Graph) CheckEdge(e Edge) error {
	src := g.Node(e.SourceNodeID)
	if src == nil {
		return fmt.Errorf("%w: source %q", ErrNodeNotFound, e.SourceNodeID)
	}
	dst := g.Node(e.TargetNodeID)
	if dst == nil {
		return fmt.Errorf("%w: target %q", ErrNodeNotFound, e.TargetNodeID)
	}

	sp := src.Port(e.SourcePortID)
	if sp == nil {
		return fmt.Errorf("%w: %q on node %q", ErrPortNotFound, e.SourcePortID, e.SourceNodeID)
	}
	tp := dst.Port(e.TargetPortID)
	if tp == nil {
		return fmt.Errorf("%w: %q on node %q", ErrPortNotFound, e.TargetPortID, e.TargetNodeID)
	}

	if sp.Direction != Output || tp.Direction != Input {
		return fmt.Errorf("%w: %s -> %s", ErrDirectionMismatch, sp.Direction, tp.Direction)
	}

	if g.HasConnection(e) {
		return ErrDuplicateEdge
	}
	return nil
}

// Validate checks every structural invariant of a whole graph: unique node
// ids, valid ports with ids, unique edge ids and edges that resolve with
// correct polarity and no duplicate tuples. It is run on imported graphs
// before they replace live state.
func (g *Graph) Validate() error {
	nodes := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node without id", ErrInvalidDocument)
		}
		if nodes[n.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		nodes[n.ID] = true
		for _, p := range n.Ports {
			if p.ID == "" {
				return fmt.Errorf("%w: port %q on node %q has no id", ErrInvalidPort, p.Name, n.ID)
			}
		}
		if err := CheckPorts(n.Ports); err != nil {
			return fmt.Errorf("node %q: %w", n.ID, err)
		}
	}

	// Replay edges one by one so duplicates are caught by CheckEdge.
	acc := Graph{Nodes: g.Nodes, Edges: make([]Edge, 0, len(g.Edges))}
	edges := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		if e.ID == "" {
			return fmt.Errorf("%w: edge without id", ErrInvalidDocument)
		}
		if edges[e.ID] {
			return fmt.Errorf("%w: duplicate edge id %q", ErrDuplicateEdge, e.ID)
		}
		edges[e.ID] = true
		if err := acc.CheckEdge(e); err != nil {
			return fmt.Errorf("edge %q: %w", e.ID, err)
		}
		acc.Edges = append(acc.Edges, e)
	}
	return nil
}
