package postgres

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/nodegraph"
)

// SaveGraph stores g under name, replacing any previous document.
func (s *PGStore) SaveGraph(ctx context.Context, name string, g *nodegraph.Graph) error {
	if !nodegraph.ValidName(name) {
		return fmt.Errorf("%w: %q", nodegraph.ErrInvalidName, name)
	}
	doc, err := nodegraph.MarshalDocument(*g)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO graph_documents (name, document) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`,
		name, doc,
	)
	if err != nil {
		return fmt.Errorf("nodegraph: save document %s: %w", name, err)
	}
	return nil
}

// GetGraph loads and validates the document stored under name.
// Returns nil, nil if not found.
func (s *PGStore) GetGraph(ctx context.Context, name string) (*nodegraph.Graph, error) {
	var doc []byte
	err := s.db.QueryRow(ctx,
		`SELECT document FROM graph_documents WHERE name = $1`, name,
	).Scan(&doc)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("nodegraph: get document: %w", err)
	}

	g, err := nodegraph.ParseDocument(doc)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGraph deletes a document by name.
// No error if the document doesn't exist.
func (s *PGStore) DeleteGraph(ctx context.Context, name string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM graph_documents WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("nodegraph: delete document: %w", err)
	}
	return nil
}

// ListGraphs returns all document names, ordered by name.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListGraphs(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM graph_documents ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("nodegraph: list documents: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("nodegraph: scan document: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("nodegraph: rows documents: %w", err)
	}

	return names, nil
}
