package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All persistence
// tests load it via GetSchemaSQL() so repository code and tests cannot drift:
// if adapter code references a column that doesn't exist here, tests fail
// immediately with "no such column".
//
// The store keeps the entire request collection as one JSON blob in the
// blobs table; the tracker assumes a single writer (one session), so a
// key-value table is all the persistence boundary needs.
const SchemaSQL = `
-- Text blobs keyed by collection name
CREATE TABLE IF NOT EXISTS blobs (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL for tests and setup.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates all tables if they do not exist.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	_, err = database.Exec(SchemaSQL)
	return err
}
