package types

import "time"

// Event is the stored representation of an occurrence. Participants holds
// Person identifiers in order; a participant need not resolve to an existing
// Person (no referential integrity is enforced).
type Event struct {
	EventID      string    // UUID, generated on creation when the client omits one.
	CreatedAt    time.Time // Timestamp of creation.
	UpdatedAt    time.Time // Timestamp of last replacement.
	Title        string    // Required, non-empty at the wire schema level.
	Date         *string   // Free-form date string, not validated.
	Description  *string
	Location     *string
	Tags         []string
	Participants []string
}
