package types

import "time"

// Person is the stored representation of an individual. Name components are
// flattened into separate columns; the wire schema nests them under a name
// object. Tags and Attributes are persisted as JSON columns.
type Person struct {
	PersonID   string    // UUID, generated on creation when the client omits one.
	CreatedAt  time.Time // Timestamp of creation.
	UpdatedAt  time.Time // Timestamp of last replacement.
	FirstName  string    // Required, non-empty at the wire schema level.
	MiddleName *string
	LastName   string // Required, non-empty at the wire schema level.
	MaidenName *string
	Nickname   *string
	BirthDate  *string // Free-form date string, not validated.
	DeathDate  *string // Free-form date string, not validated.
	Gender     *string
	Bio        *string
	Tags       []string
	Attributes map[string]any // Values are a string or a list of strings.
}
