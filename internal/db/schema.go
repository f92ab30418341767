package db

import "strings"

// SchemaSQLite is the authoritative schema for SQLite deployments.
//
// This is the single source of truth for the registry schema. All
// repository tests load it via GetSchemaSQL so test and production
// schemas cannot drift: a repository referencing a missing column
// fails immediately with "no such column".
const SchemaSQLite = `
-- Spirits: state-machine-governed worker entities, never deleted
CREATE TABLE IF NOT EXISTS spirits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	state TEXT NOT NULL CHECK(state IN ('pending', 'created', 'ready', 'error')),
	meta TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Registry services (free-form status, not lifecycle-governed)
CREATE TABLE IF NOT EXISTS registry_services (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	config TEXT,
	auth_mode TEXT NOT NULL DEFAULT 'none',
	status TEXT NOT NULL DEFAULT 'active',
	last_checkin DATETIME,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Spirit events: append-only audit trail, one row per mutation
CREATE TABLE IF NOT EXISTS spirit_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	spirit_id INTEGER NOT NULL,
	event_type TEXT NOT NULL CHECK(event_type IN ('create', 'state_change', 'name_update', 'meta_update')),
	prev_state TEXT,
	new_state TEXT,
	note TEXT,
	meta TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (spirit_id) REFERENCES spirits(id)
);

CREATE INDEX IF NOT EXISTS idx_spirit_events_spirit ON spirit_events(spirit_id, created_at);
`

// SchemaPostgres mirrors SchemaSQLite for Postgres deployments.
const SchemaPostgres = `
CREATE TABLE IF NOT EXISTS spirits (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	state TEXT NOT NULL CHECK(state IN ('pending', 'created', 'ready', 'error')),
	meta JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS registry_services (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	config JSONB,
	auth_mode TEXT NOT NULL DEFAULT 'none',
	status TEXT NOT NULL DEFAULT 'active',
	last_checkin TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS spirit_events (
	id BIGSERIAL PRIMARY KEY,
	spirit_id BIGINT NOT NULL REFERENCES spirits(id),
	event_type TEXT NOT NULL CHECK(event_type IN ('create', 'state_change', 'name_update', 'meta_update')),
	prev_state TEXT,
	new_state TEXT,
	note TEXT,
	meta JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_spirit_events_spirit ON spirit_events(spirit_id, created_at);
`

// GetSchemaSQL returns the authoritative schema for the dialect.
func GetSchemaSQL(dialect Dialect) string {
	if dialect == DialectPostgres {
		return SchemaPostgres
	}
	return SchemaSQLite
}

// SplitStatements breaks a schema bundle into individual statements so
// they can be executed one at a time. Comment lines are dropped first:
// a semicolon inside a comment must not slice a statement apart.
func SplitStatements(schema string) []string {
	var b strings.Builder
	for _, line := range strings.Split(schema, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	parts := strings.Split(b.String(), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
