package pg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// goose keeps its configuration in package globals.
var migrateMu sync.Mutex

// Migrate applies the goose migrations found in dir of fsys.
// Migrations are usually embedded next to the store that owns the schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, dir string, cfg Config, log *slog.Logger) error {
	if fsys == nil || dir == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}
	if _, err := fs.Stat(fsys, dir); err != nil {
		return errors.Join(ErrMigrationsDirNotFound, err)
	}

	// goose speaks database/sql; share the pool's connections through stdlib.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migration connection", "error", err)
		}
	}()

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(slogAdapter{log: log})
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// slogAdapter routes goose's Printf-style output through slog.
type slogAdapter struct {
	log *slog.Logger
}

func (a slogAdapter) Fatalf(format string, v ...any) {
	a.log.Error(fmt.Sprintf(format, v...), "component", "goose")
}

func (a slogAdapter) Printf(format string, v ...any) {
	a.log.Info(fmt.Sprintf(format, v...), "component", "goose")
}
