package db

// SchemaSQL is the complete schema for the local catalog store. Entries
// mirror the catalog's hierarchy (collections and data objects identified
// by canonical path); AVUs are the attribute/value/units triples attached
// to them.
const SchemaSQL = `
-- Catalog entries (collections and data objects)
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL UNIQUE,
	parent TEXT NOT NULL,
	name TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('leaf', 'container')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_entries_parent ON entries(parent);
CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);

-- Attribute/value/units triples attached to entries
CREATE TABLE IF NOT EXISTS avus (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id INTEGER NOT NULL,
	attr TEXT NOT NULL,
	value TEXT NOT NULL,
	units TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (entry_id) REFERENCES entries(id) ON DELETE CASCADE,
	UNIQUE(entry_id, attr, value, units)
);

CREATE INDEX IF NOT EXISTS idx_avus_attr ON avus(attr);
CREATE INDEX IF NOT EXISTS idx_avus_attr_value ON avus(attr, value);
`
