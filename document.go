package nodegraph

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MarshalDocument encodes g as an indented JSON document. Selection flags
// are always normalized to false.
func MarshalDocument(g Graph) ([]byte, error) {
	out, err := json.MarshalIndent(g.Normalized(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("nodegraph: encode document: %w", err)
	}
	return out, nil
}

// ParseDocument decodes and validates a JSON document. The document must
// carry "nodes" and "edges" arrays and a "config" object; anything else is
// rejected as a whole with ErrInvalidDocument. Missing config fields and
// node sizes are filled from defaults and selection flags are cleared. An
// explicit zero cap is kept.
func ParseDocument(data []byte) (Graph, error) {
	if !gjson.ValidBytes(data) {
		return Graph{}, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}

	keys := gjson.GetManyBytes(data, "nodes", "edges", "config")
	if !keys[0].IsArray() {
		return Graph{}, fmt.Errorf("%w: missing nodes array", ErrInvalidDocument)
	}
	if !keys[1].IsArray() {
		return Graph{}, fmt.Errorf("%w: missing edges array", ErrInvalidDocument)
	}
	if !keys[2].IsObject() {
		return Graph{}, fmt.Errorf("%w: missing config object", ErrInvalidDocument)
	}

	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	g.Config = documentConfig(g.Config, keys[2])
	if err := g.Config.Validate(); err != nil {
		return Graph{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	ApplyNodeDefaults(&g)
	g = g.Normalized()

	if err := g.Validate(); err != nil {
		return Graph{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return g, nil
}

// documentConfig fills caps that are absent from the document. Unlike
// WithDefaults, a cap written as 0 stays 0.
func documentConfig(c Config, raw gjson.Result) Config {
	filled := c.WithDefaults()
	if raw.Get("maxNodes").Exists() {
		filled.MaxNodes = c.MaxNodes
	}
	if raw.Get("maxEdges").Exists() {
		filled.MaxEdges = c.MaxEdges
	}
	return filled
}

// ApplyNodeDefaults fills unset node sizes from g.Config.
func ApplyNodeDefaults(g *Graph) {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Width <= 0 {
			n.Width = g.Config.NodeDefaults.Width
		}
		if n.Height <= 0 {
			n.Height = g.Config.NodeDefaults.Height
		}
	}
}
