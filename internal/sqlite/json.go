// JSON column helpers. Tag lists, participant lists, and attribute maps are
// persisted as JSON text in a single column each.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// encodeStringList marshals a string list for a JSON column. A nil list is
// stored as an empty array.
func encodeStringList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding string list: %w", err)
	}
	return string(raw), nil
}

// decodeStringList unmarshals a JSON column into a string list.
// Always returns a non-nil list.
func decodeStringList(raw string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// encodeAttributes marshals an attribute map for a JSON column. A nil map is
// stored as an empty object.
func encodeAttributes(attrs map[string]any) (string, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("encoding attributes: %w", err)
	}
	return string(raw), nil
}

// decodeAttributes unmarshals a JSON column into an attribute map.
// Always returns a non-nil map.
func decodeAttributes(raw string) (map[string]any, error) {
	var attrs map[string]any
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, fmt.Errorf("decoding attributes: %w", err)
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs, nil
}

// nullableString converts an optional field to a driver value for a nullable
// column.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr converts a scanned nullable column back to an optional field.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
