// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect opens a *pgxpool.Pool from an env-tagged Config and retries until
// the server answers a ping. Migrate applies goose migrations read from an
// fs.FS, typically an embed.FS owned by the package that defines the schema.
// Healthcheck adapts the pool into a readiness check, and IsDuplicateKeyError
// classifies unique violations without leaking pgconn types into callers.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations, "migrations", cfg, log); err != nil {
//	    return err
//	}
package pg
