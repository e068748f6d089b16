// This file implements the people table accessor for the SQLite backend.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sylvanote/sylvanote/pkg/types"
)

// Compile-time interface check: peopleTable must implement Table.
var _ types.Table = (*peopleTable)(nil)

// peopleTable implements the Table interface for the Person entity kind.
// Each operation hydrates/dehydrates between SQLite rows and *types.Person
// structs; the five name columns stay flat at this layer.
type peopleTable struct {
	backend *Backend
}

// Get retrieves a person by ID and hydrates the row to *types.Person.
func (pt *peopleTable) Get(ctx context.Context, id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := pt.backend.db.QueryRowContext(ctx,
		`SELECT person_id, created_at, updated_at, first_name, middle_name, last_name,
		        maiden_name, nickname, birth_date, death_date, gender, bio, tags, attributes
		 FROM people WHERE person_id = ?`,
		id,
	)
	person, err := hydratePerson(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting person %s: %w", id, err)
	}
	return person, nil
}

// Set persists a person. If id is empty, generates a UUID and creates the
// record with fresh timestamps. If id names an existing record, every
// mutable field is overwritten and updated_at is refreshed. Returns the
// actual ID used.
func (pt *peopleTable) Set(ctx context.Context, id string, data any) (string, error) {
	person, ok := data.(*types.Person)
	if !ok {
		return "", types.ErrInvalidData
	}
	if person.FirstName == "" || person.LastName == "" {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()

	if id == "" {
		id = generateUUID()
	}
	person.PersonID = id
	if person.CreatedAt.IsZero() {
		person.CreatedAt = now
	}
	if person.UpdatedAt.IsZero() {
		person.UpdatedAt = now
	}

	var exists bool
	err := pt.backend.db.QueryRowContext(ctx,
		"SELECT 1 FROM people WHERE person_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking person existence: %w", err)
	}
	if exists {
		person.UpdatedAt = now
	}

	tags, err := encodeStringList(person.Tags)
	if err != nil {
		return "", err
	}
	attrs, err := encodeAttributes(person.Attributes)
	if err != nil {
		return "", err
	}

	tx, err := pt.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAtStr := person.CreatedAt.Format(time.RFC3339Nano)
	updatedAtStr := person.UpdatedAt.Format(time.RFC3339Nano)

	if exists {
		_, err = tx.ExecContext(ctx,
			`UPDATE people SET created_at = ?, updated_at = ?, first_name = ?, middle_name = ?,
			        last_name = ?, maiden_name = ?, nickname = ?, birth_date = ?, death_date = ?,
			        gender = ?, bio = ?, tags = ?, attributes = ?
			 WHERE person_id = ?`,
			createdAtStr, updatedAtStr, person.FirstName, nullableString(person.MiddleName),
			person.LastName, nullableString(person.MaidenName), nullableString(person.Nickname),
			nullableString(person.BirthDate), nullableString(person.DeathDate),
			nullableString(person.Gender), nullableString(person.Bio), tags, attrs, id,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO people (person_id, created_at, updated_at, first_name, middle_name,
			        last_name, maiden_name, nickname, birth_date, death_date, gender, bio, tags, attributes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, createdAtStr, updatedAtStr, person.FirstName, nullableString(person.MiddleName),
			person.LastName, nullableString(person.MaidenName), nullableString(person.Nickname),
			nullableString(person.BirthDate), nullableString(person.DeathDate),
			nullableString(person.Gender), nullableString(person.Bio), tags, attrs,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing person: %w", err)
	}

	return id, nil
}

// Delete removes a person permanently.
func (pt *peopleTable) Delete(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := pt.backend.db.ExecContext(ctx, "DELETE FROM people WHERE person_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting person %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting person %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch returns every person in storage-native order (full scan, no sort).
func (pt *peopleTable) Fetch(ctx context.Context) ([]any, error) {
	rows, err := pt.backend.db.QueryContext(ctx,
		`SELECT person_id, created_at, updated_at, first_name, middle_name, last_name,
		        maiden_name, nickname, birth_date, death_date, gender, bio, tags, attributes
		 FROM people`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching people: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		person, err := hydratePerson(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating person: %w", err)
		}
		results = append(results, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}
	return results, nil
}

// hydratePerson scans a people row into a *types.Person.
func hydratePerson(s rowScanner) (*types.Person, error) {
	var (
		person                            types.Person
		createdAt, updatedAt, tags, attrs string
		middle, maiden, nickname          sql.NullString
		birthDate, deathDate, gender, bio sql.NullString
	)
	err := s.Scan(&person.PersonID, &createdAt, &updatedAt, &person.FirstName, &middle,
		&person.LastName, &maiden, &nickname, &birthDate, &deathDate, &gender, &bio,
		&tags, &attrs)
	if err != nil {
		return nil, err
	}

	if person.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if person.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	person.MiddleName = stringPtr(middle)
	person.MaidenName = stringPtr(maiden)
	person.Nickname = stringPtr(nickname)
	person.BirthDate = stringPtr(birthDate)
	person.DeathDate = stringPtr(deathDate)
	person.Gender = stringPtr(gender)
	person.Bio = stringPtr(bio)

	if person.Tags, err = decodeStringList(tags); err != nil {
		return nil, err
	}
	if person.Attributes, err = decodeAttributes(attrs); err != nil {
		return nil, err
	}
	return &person, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
