package nodegraph

import (
	"context"
	"errors"
)

var (
	ErrLimitExceeded     = errors.New("nodegraph: limit exceeded")
	ErrNodeNotFound      = errors.New("nodegraph: node not found")
	ErrEdgeNotFound      = errors.New("nodegraph: edge not found")
	ErrPortNotFound      = errors.New("nodegraph: port not found")
	ErrDirectionMismatch = errors.New("nodegraph: edge must run from an output port to an input port")
	ErrDuplicateEdge     = errors.New("nodegraph: duplicate edge")
	ErrDuplicateNode     = errors.New("nodegraph: duplicate node id")
	ErrInvalidPort       = errors.New("nodegraph: invalid port")
	ErrInvalidConfig     = errors.New("nodegraph: invalid config")
	ErrInvalidDocument   = errors.New("nodegraph: invalid document")
	ErrInvalidName       = errors.New("nodegraph: invalid document name")
)

// Store defines the contract for persisting graph documents and editor
// preferences. Documents are stored as flat JSON; backends never split
// them into rows.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Documents
	SaveGraph(ctx context.Context, name string, g *Graph) error
	GetGraph(ctx context.Context, name string) (*Graph, error)
	DeleteGraph(ctx context.Context, name string) error
	ListGraphs(ctx context.Context) ([]string, error)

	// Preferences (theme and other UI settings)
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}

// ValidName reports whether name can be used as a document name by every
// backend: 1-64 characters of letters, digits, '-' and '_'.
func ValidName(name string) bool {
	if name == "" || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
