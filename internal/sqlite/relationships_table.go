// This file implements the relationships table accessor for the SQLite
// backend. Edges carry no timestamps; duplicate edges between the same pair
// and self-loops are permitted, so no uniqueness is enforced.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sylvanote/sylvanote/pkg/types"
)

var _ types.Table = (*relationshipsTable)(nil)

// relationshipsTable implements the Table interface for the RelationshipEdge
// entity kind.
type relationshipsTable struct {
	backend *Backend
}

// Get retrieves an edge by ID and hydrates the row to *types.RelationshipEdge.
func (rt *relationshipsTable) Get(ctx context.Context, id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := rt.backend.db.QueryRowContext(ctx,
		`SELECT edge_id, from_id, to_id, edge_type, start_date, end_date, notes
		 FROM relationships WHERE edge_id = ?`,
		id,
	)
	edge, err := hydrateRelationship(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting relationship %s: %w", id, err)
	}
	return edge, nil
}

// Set persists an edge. If id is empty, generates a UUID. Validates the edge
// type against the closed set and requires both endpoints. Returns the
// actual ID used.
func (rt *relationshipsTable) Set(ctx context.Context, id string, data any) (string, error) {
	edge, ok := data.(*types.RelationshipEdge)
	if !ok {
		return "", types.ErrInvalidData
	}
	if !types.ValidRelationshipType(edge.Type) {
		return "", types.ErrInvalidData
	}
	if edge.FromID == "" || edge.ToID == "" {
		return "", types.ErrInvalidData
	}

	if id == "" {
		id = generateUUID()
	}
	edge.EdgeID = id

	var exists bool
	err := rt.backend.db.QueryRowContext(ctx,
		"SELECT 1 FROM relationships WHERE edge_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking relationship existence: %w", err)
	}

	tx, err := rt.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if exists {
		_, err = tx.ExecContext(ctx,
			`UPDATE relationships SET from_id = ?, to_id = ?, edge_type = ?, start_date = ?, end_date = ?, notes = ?
			 WHERE edge_id = ?`,
			edge.FromID, edge.ToID, edge.Type, nullableString(edge.StartDate),
			nullableString(edge.EndDate), nullableString(edge.Notes), id,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO relationships (edge_id, from_id, to_id, edge_type, start_date, end_date, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, edge.FromID, edge.ToID, edge.Type, nullableString(edge.StartDate),
			nullableString(edge.EndDate), nullableString(edge.Notes),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting relationship: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing relationship: %w", err)
	}

	return id, nil
}

// Delete removes an edge permanently.
func (rt *relationshipsTable) Delete(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := rt.backend.db.ExecContext(ctx, "DELETE FROM relationships WHERE edge_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting relationship %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting relationship %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch returns every edge in storage-native order (full scan, no sort).
func (rt *relationshipsTable) Fetch(ctx context.Context) ([]any, error) {
	rows, err := rt.backend.db.QueryContext(ctx,
		`SELECT edge_id, from_id, to_id, edge_type, start_date, end_date, notes
		 FROM relationships`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching relationships: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		edge, err := hydrateRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating relationship: %w", err)
		}
		results = append(results, edge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationships: %w", err)
	}
	return results, nil
}

// hydrateRelationship scans a relationships row into a *types.RelationshipEdge.
func hydrateRelationship(s rowScanner) (*types.RelationshipEdge, error) {
	var (
		edge                      types.RelationshipEdge
		startDate, endDate, notes sql.NullString
	)
	err := s.Scan(&edge.EdgeID, &edge.FromID, &edge.ToID, &edge.Type,
		&startDate, &endDate, &notes)
	if err != nil {
		return nil, err
	}

	edge.StartDate = stringPtr(startDate)
	edge.EndDate = stringPtr(endDate)
	edge.Notes = stringPtr(notes)
	return &edge, nil
}
