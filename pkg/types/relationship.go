package types

// Relationship edge types. The set is closed; any other value is rejected at
// the wire schema level and by the store.
const (
	RelParentOf         = "PARENT_OF"
	RelSpouseOf         = "SPOUSE_OF"
	RelAdoptedParentOf  = "ADOPTED_PARENT_OF"
	RelDivorcedSpouseOf = "DIVORCED_SPOUSE_OF"
)

// validRelationshipTypes is the set of recognized edge type values.
var validRelationshipTypes = map[string]bool{
	RelParentOf:         true,
	RelSpouseOf:         true,
	RelAdoptedParentOf:  true,
	RelDivorcedSpouseOf: true,
}

// ValidRelationshipType reports whether t is a recognized edge type.
func ValidRelationshipType(t string) bool {
	return validRelationshipTypes[t]
}

// RelationshipEdge is a directed, typed edge between two entities. Endpoints
// are identifiers by value; they are not type-checked against Person or
// Event, and self-loops, duplicate edges, and dangling endpoints are all
// permitted.
type RelationshipEdge struct {
	EdgeID    string // UUID, generated on creation when the client omits one.
	FromID    string
	ToID      string
	Type      string // One of the Rel* constants.
	StartDate *string
	EndDate   *string
	Notes     *string
}
