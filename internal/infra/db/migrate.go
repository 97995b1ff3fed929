package db

import "database/sql"

// MigrateUp creates the schema. All statements are idempotent so the
// migration runs safely at every startup.
//
// created_at stores the display-ready date string shown to visitors;
// created_seq provides the stable newest-first ordering.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    content        TEXT NOT NULL,
    excerpt        TEXT NOT NULL DEFAULT '',
    featured_image TEXT NOT NULL DEFAULT '',
    created_at     TEXT NOT NULL DEFAULT '',
    created_by     TEXT NOT NULL DEFAULT '',
    created_seq    BIGSERIAL
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY created_seq DESC drives every listing query
		`CREATE INDEX IF NOT EXISTS idx_articles_created_seq ON articles(created_seq DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up ILIKE search; ignore failure when the extension
	// cannot be installed (no superuser on managed databases)
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_excerpt_gin ON articles USING gin(excerpt gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// fails without pg_trgm, which is fine
		_, _ = db.Exec(idx)
	}

	return nil
}

// MigrateDown drops the schema. Use with caution: this deletes all articles.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_articles_title_gin`,
		`DROP INDEX IF EXISTS idx_articles_excerpt_gin`,
		`DROP INDEX IF EXISTS idx_articles_created_seq`,
		`DROP TABLE IF EXISTS articles CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
