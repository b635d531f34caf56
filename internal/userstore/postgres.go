package userstore

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/pg"
)

// Migrations holds the goose migrations for the users table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations.
const MigrationsDir = "migrations"

const (
	insertUserQuery = `
INSERT INTO users (id, name, national_id, birth_date, gender, phone, email, email_key, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	selectUsersQuery = `
SELECT name, national_id, coalesce(to_char(birth_date, 'YYYY-MM-DD'), ''), gender, phone, email
FROM users
ORDER BY created_at, id`
)

// Postgres stores users in the users table.
type Postgres struct {
	pool *pgxpool.Pool
	opts options
	now  func() time.Time
}

// NewPostgres returns a store backed by pool. Apply Migrations first.
func NewPostgres(pool *pgxpool.Pool, opts ...Option) *Postgres {
	return &Postgres{
		pool: pool,
		opts: newOptions("userstore.postgres", opts),
		now:  time.Now,
	}
}

// Save inserts the record. A unique violation returns false.
func (s *Postgres) Save(ctx context.Context, record registration.UserRecord) (bool, error) {
	e, err := newEntry(uuid.NewString(), record, s.opts.bcryptCost, s.now())
	if err != nil {
		return false, err
	}

	var birthDate any
	if e.BirthDate != "" {
		birthDate = record.BirthDate
	}

	_, err = s.pool.Exec(ctx, insertUserQuery,
		e.ID, e.Name, e.NationalID, birthDate, e.Gender, e.Phone, e.Email, e.emailKey(), e.PasswordHash, e.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		s.opts.log.InfoContext(ctx, "duplicate user rejected")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return true, nil
}

// FindAll returns users in registration order.
func (s *Postgres) FindAll(ctx context.Context) ([]registration.UserRecord, error) {
	rows, err := s.pool.Query(ctx, selectUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entry, error) {
		var e entry
		err := row.Scan(&e.Name, &e.NationalID, &e.BirthDate, &e.Gender, &e.Phone, &e.Email)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}

	records := make([]registration.UserRecord, 0, len(entries))
	for _, e := range entries {
		r, err := e.record()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Ping checks the pool.
func (s *Postgres) Ping(ctx context.Context) error {
	return pg.Healthcheck(s.pool)(ctx)
}
