package nodegraph

import "fmt"

// Built-in limits used when a config leaves a field unset.
const (
	DefaultMaxNodes   = 100
	DefaultMaxEdges   = 200
	DefaultNodeWidth  = 120
	DefaultNodeHeight = 80
)

// Size is a width/height pair in world units.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Config bounds a graph and supplies node defaults.
type Config struct {
	MaxNodes     int  `json:"maxNodes" toml:"max_nodes"`
	MaxEdges     int  `json:"maxEdges" toml:"max_edges"`
	NodeDefaults Size `json:"nodeDefaults" toml:"node_defaults"`
}

// DefaultConfig returns the built-in config.
func DefaultConfig() Config {
	return Config{
		MaxNodes:     DefaultMaxNodes,
		MaxEdges:     DefaultMaxEdges,
		NodeDefaults: Size{Width: DefaultNodeWidth, Height: DefaultNodeHeight},
	}
}

// WithDefaults returns c with every zero field replaced by its built-in
// default. Zero means unset for Go callers; documents and config files
// that need a zero cap keep it, and Editor.Reconfigure accepts it.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.MaxNodes == 0 {
		c.MaxNodes = d.MaxNodes
	}
	if c.MaxEdges == 0 {
		c.MaxEdges = d.MaxEdges
	}
	if c.NodeDefaults.Width == 0 {
		c.NodeDefaults.Width = d.NodeDefaults.Width
	}
	if c.NodeDefaults.Height == 0 {
		c.NodeDefaults.Height = d.NodeDefaults.Height
	}
	return c
}

// Validate checks that caps are non-negative and default sizes positive.
func (c Config) Validate() error {
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: maxNodes %d is negative", ErrInvalidConfig, c.MaxNodes)
	}
	if c.MaxEdges < 0 {
		return fmt.Errorf("%w: maxEdges %d is negative", ErrInvalidConfig, c.MaxEdges)
	}
	if c.NodeDefaults.Width <= 0 || c.NodeDefaults.Height <= 0 {
		return fmt.Errorf("%w: node defaults must be positive, got %gx%g",
			ErrInvalidConfig, c.NodeDefaults.Width, c.NodeDefaults.Height)
	}
	return nil
}
