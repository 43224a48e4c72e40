package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
)

// Snapshot writes a consistent copy of the whole database to path using
// VACUUM INTO, producing a standalone SQLite file suitable for download or
// backup. Any stale file at path is removed first because VACUUM INTO
// refuses to overwrite.
func Snapshot(ctx context.Context, db *sql.DB, path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing stale snapshot: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `VACUUM INTO ?`, path); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
