package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"

	"github.com/jmoiron/sqlx"
)

// Migrate executes every *.sql file under dir of migrations in name order.
// Each migration must be idempotent.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	applied := make([]string, 0, len(names))
	for _, name := range names {
		statement, err := fs.ReadFile(migrations, path.Join(dir, name))
		if err != nil {
			return applied, fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(statement)); err != nil {
			return applied, fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
		slog.DebugContext(ctx, "applied migration", "name", name)
		applied = append(applied, name)
	}
	return applied, nil
}
