// Schema DDL for the SylvaNote tables. Tables are created on Attach if they
// do not already exist; the database file is persistent across runs.
package sqlite

const (
	createPeople = `CREATE TABLE IF NOT EXISTS people (
    person_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    first_name TEXT NOT NULL,
    middle_name TEXT,
    last_name TEXT NOT NULL,
    maiden_name TEXT,
    nickname TEXT,
    birth_date TEXT,
    death_date TEXT,
    gender TEXT,
    bio TEXT,
    tags TEXT NOT NULL,
    attributes TEXT NOT NULL
);`

	createEvents = `CREATE TABLE IF NOT EXISTS events (
    event_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    title TEXT NOT NULL,
    date TEXT,
    description TEXT,
    location TEXT,
    tags TEXT NOT NULL,
    participants TEXT NOT NULL
);`

	createRelationships = `CREATE TABLE IF NOT EXISTS relationships (
    edge_id TEXT PRIMARY KEY,
    from_id TEXT NOT NULL,
    to_id TEXT NOT NULL,
    edge_type TEXT NOT NULL,
    start_date TEXT,
    end_date TEXT,
    notes TEXT
);`
)

// Index DDL for edge endpoint lookups.
const (
	idxRelationshipsFrom = `CREATE INDEX IF NOT EXISTS idx_relationships_from ON relationships(from_id);`
	idxRelationshipsTo   = `CREATE INDEX IF NOT EXISTS idx_relationships_to ON relationships(to_id);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createPeople,
	createEvents,
	createRelationships,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRelationshipsFrom,
	idxRelationshipsTo,
}
