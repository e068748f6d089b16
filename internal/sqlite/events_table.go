// This file implements the events table accessor for the SQLite backend.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sylvanote/sylvanote/pkg/types"
)

var _ types.Table = (*eventsTable)(nil)

// eventsTable implements the Table interface for the Event entity kind.
type eventsTable struct {
	backend *Backend
}

// Get retrieves an event by ID and hydrates the row to *types.Event.
func (et *eventsTable) Get(ctx context.Context, id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := et.backend.db.QueryRowContext(ctx,
		`SELECT event_id, created_at, updated_at, title, date, description, location, tags, participants
		 FROM events WHERE event_id = ?`,
		id,
	)
	event, err := hydrateEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting event %s: %w", id, err)
	}
	return event, nil
}

// Set persists an event. If id is empty, generates a UUID and creates the
// record with fresh timestamps. If id names an existing record, every
// mutable field is overwritten and updated_at is refreshed. Returns the
// actual ID used.
func (et *eventsTable) Set(ctx context.Context, id string, data any) (string, error) {
	event, ok := data.(*types.Event)
	if !ok {
		return "", types.ErrInvalidData
	}
	if event.Title == "" {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()

	if id == "" {
		id = generateUUID()
	}
	event.EventID = id
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	if event.UpdatedAt.IsZero() {
		event.UpdatedAt = now
	}

	var exists bool
	err := et.backend.db.QueryRowContext(ctx,
		"SELECT 1 FROM events WHERE event_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking event existence: %w", err)
	}
	if exists {
		event.UpdatedAt = now
	}

	tags, err := encodeStringList(event.Tags)
	if err != nil {
		return "", err
	}
	participants, err := encodeStringList(event.Participants)
	if err != nil {
		return "", err
	}

	tx, err := et.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAtStr := event.CreatedAt.Format(time.RFC3339Nano)
	updatedAtStr := event.UpdatedAt.Format(time.RFC3339Nano)

	if exists {
		_, err = tx.ExecContext(ctx,
			`UPDATE events SET created_at = ?, updated_at = ?, title = ?, date = ?,
			        description = ?, location = ?, tags = ?, participants = ?
			 WHERE event_id = ?`,
			createdAtStr, updatedAtStr, event.Title, nullableString(event.Date),
			nullableString(event.Description), nullableString(event.Location),
			tags, participants, id,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO events (event_id, created_at, updated_at, title, date, description, location, tags, participants)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, createdAtStr, updatedAtStr, event.Title, nullableString(event.Date),
			nullableString(event.Description), nullableString(event.Location),
			tags, participants,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing event: %w", err)
	}

	return id, nil
}

// Delete removes an event permanently.
func (et *eventsTable) Delete(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := et.backend.db.ExecContext(ctx, "DELETE FROM events WHERE event_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch returns every event in storage-native order (full scan, no sort).
func (et *eventsTable) Fetch(ctx context.Context) ([]any, error) {
	rows, err := et.backend.db.QueryContext(ctx,
		`SELECT event_id, created_at, updated_at, title, date, description, location, tags, participants
		 FROM events`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		event, err := hydrateEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating event: %w", err)
		}
		results = append(results, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return results, nil
}

// hydrateEvent scans an events row into a *types.Event.
func hydrateEvent(s rowScanner) (*types.Event, error) {
	var (
		event                                    types.Event
		createdAt, updatedAt, tags, participants string
		date, description, location              sql.NullString
	)
	err := s.Scan(&event.EventID, &createdAt, &updatedAt, &event.Title, &date,
		&description, &location, &tags, &participants)
	if err != nil {
		return nil, err
	}

	if event.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if event.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	event.Date = stringPtr(date)
	event.Description = stringPtr(description)
	event.Location = stringPtr(location)

	if event.Tags, err = decodeStringList(tags); err != nil {
		return nil, err
	}
	if event.Participants, err = decodeStringList(participants); err != nil {
		return nil, err
	}
	return &event, nil
}
