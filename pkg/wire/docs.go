// Package wire defines the JSON document shapes exchanged with API clients
// and the translation functions between stored entities and wire documents.
// The wire schema is decoupled from the storage column layout: a person's
// name is flattened into separate columns in storage but nested under a
// name object on the wire.
package wire

import "time"

// Node type discriminants. Present on each node document so a merged
// collection can be disambiguated by its consumer.
const (
	TypePerson = "person"
	TypeEvent  = "event"
)

// PersonName is the nested name object of a person document. First and Last
// are required and non-empty; the remaining components are optional.
type PersonName struct {
	First    string  `json:"first" yaml:"first"`
	Middle   *string `json:"middle" yaml:"middle"`
	Last     string  `json:"last" yaml:"last"`
	Maiden   *string `json:"maiden" yaml:"maiden"`
	Nickname *string `json:"nickname" yaml:"nickname"`
}

// PersonDoc is the wire document for a Person. Optional fields serialize as
// null when absent; Tags defaults to an empty list and Attributes to an
// empty mapping.
type PersonDoc struct {
	ID         string         `json:"id" yaml:"id"`
	CreatedAt  *time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt  *time.Time     `json:"updatedAt" yaml:"updatedAt"`
	Tags       []string       `json:"tags" yaml:"tags"`
	Type       string         `json:"type" yaml:"type"` // always "person"
	Name       PersonName     `json:"name" yaml:"name"`
	BirthDate  *string        `json:"birthDate" yaml:"birthDate"`
	DeathDate  *string        `json:"deathDate" yaml:"deathDate"`
	Gender     *string        `json:"gender" yaml:"gender"`
	Bio        *string        `json:"bio" yaml:"bio"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
}

// EventDoc is the wire document for an Event. Participants is an ordered
// list of person identifiers; entries are not checked against existing
// people.
type EventDoc struct {
	ID           string     `json:"id" yaml:"id"`
	CreatedAt    *time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt" yaml:"updatedAt"`
	Tags         []string   `json:"tags" yaml:"tags"`
	Type         string     `json:"type" yaml:"type"` // always "event"
	Title        string     `json:"title" yaml:"title"`
	Date         *string    `json:"date" yaml:"date"`
	Description  *string    `json:"description" yaml:"description"`
	Location     *string    `json:"location" yaml:"location"`
	Participants []string   `json:"participants" yaml:"participants"`
}

// RelationshipDoc is the wire document for a RelationshipEdge. It is flat:
// no timestamps or tags, only the edge fields.
type RelationshipDoc struct {
	ID        string  `json:"id" yaml:"id"`
	FromID    string  `json:"fromId" yaml:"fromId"`
	ToID      string  `json:"toId" yaml:"toId"`
	Type      string  `json:"type" yaml:"type"`
	StartDate *string `json:"startDate" yaml:"startDate"`
	EndDate   *string `json:"endDate" yaml:"endDate"`
	Notes     *string `json:"notes" yaml:"notes"`
}

// GraphDoc is the whole-graph aggregate: every person and event merged into
// one mapping keyed by stringified identifier, plus every relationship edge
// as a separate list. Person and event identifiers share one namespace in
// Nodes; a collision silently overwrites.
type GraphDoc struct {
	Nodes map[string]any    `json:"nodes"`
	Edges []RelationshipDoc `json:"edges"`
}
