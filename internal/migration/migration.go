package migration

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed *.sql
var Files embed.FS

const dialect = "postgres"

func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: Files,
		Root:       ".",
	}
}

// Run applies (up) or rolls back (down) the embedded migrations. max limits
// the number of steps; 0 means all.
func Run(db *sql.DB, direction string, max int) (int, error) {
	switch direction {
	case "up":
		return migrate.ExecMax(db, dialect, Source(), migrate.Up, max)
	case "down":
		return migrate.ExecMax(db, dialect, Source(), migrate.Down, max)
	default:
		return 0, fmt.Errorf("unknown migration direction %q", direction)
	}
}
