package wire

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sylvanote/sylvanote/pkg/types"
)

// Request validation. Each Validate method checks a decoded document against
// the wire schema and returns a human-readable error for the first violation
// found. Validation happens structurally, before anything reaches the store.

// Validate checks a person document: name.first and name.last must be
// present and non-empty, any supplied identifier must be a UUID, and
// attribute values must be a string or a list of strings.
func (d PersonDoc) Validate() error {
	if err := validateOptionalID(d.ID, "id"); err != nil {
		return err
	}
	if strings.TrimSpace(d.Name.First) == "" {
		return fmt.Errorf("name.first is required")
	}
	if strings.TrimSpace(d.Name.Last) == "" {
		return fmt.Errorf("name.last is required")
	}
	for key, value := range d.Attributes {
		if err := validateAttributeValue(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks an event document: title must be present and non-empty,
// and the event identifier and every participant must be UUIDs.
func (d EventDoc) Validate() error {
	if err := validateOptionalID(d.ID, "id"); err != nil {
		return err
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required")
	}
	for i, p := range d.Participants {
		if _, err := uuid.Parse(p); err != nil {
			return fmt.Errorf("participants[%d] is not a valid UUID", i)
		}
	}
	return nil
}

// Validate checks a relationship document: both endpoints must be UUIDs and
// the type must belong to the closed edge-type set.
func (d RelationshipDoc) Validate() error {
	if err := validateOptionalID(d.ID, "id"); err != nil {
		return err
	}
	if d.FromID == "" {
		return fmt.Errorf("fromId is required")
	}
	if _, err := uuid.Parse(d.FromID); err != nil {
		return fmt.Errorf("fromId is not a valid UUID")
	}
	if d.ToID == "" {
		return fmt.Errorf("toId is required")
	}
	if _, err := uuid.Parse(d.ToID); err != nil {
		return fmt.Errorf("toId is not a valid UUID")
	}
	if !types.ValidRelationshipType(d.Type) {
		return fmt.Errorf("type must be one of PARENT_OF, SPOUSE_OF, ADOPTED_PARENT_OF, DIVORCED_SPOUSE_OF")
	}
	return nil
}

// ValidateID checks a path identifier. Unlike document identifiers it must
// be present.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("id is not a valid UUID")
	}
	return nil
}

// validateOptionalID accepts an empty identifier (the store generates one)
// but rejects anything non-empty that is not a UUID.
func validateOptionalID(id, field string) error {
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s is not a valid UUID", field)
	}
	return nil
}

// validateAttributeValue accepts a string or a list of strings. JSON
// decoding yields []any for lists, so both []string and []any of strings
// pass.
func validateAttributeValue(key string, value any) error {
	switch v := value.(type) {
	case string:
		return nil
	case []string:
		return nil
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("attributes[%q] list entries must be strings", key)
			}
		}
		return nil
	default:
		return fmt.Errorf("attributes[%q] must be a string or a list of strings", key)
	}
}
