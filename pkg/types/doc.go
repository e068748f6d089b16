// Package types defines the Store and Table interfaces, the stored entity
// types (Person, Event, RelationshipEdge), and standard errors for the
// SylvaNote record store.
package types
