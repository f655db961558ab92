package kvstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pgOutOfDiskSpace is the PostgreSQL error class for storage exhaustion.
const pgOutOfDiskSpace = "53100"

// Postgres is a Store over a single key/value table, for deployments that
// already run PostgreSQL and want the CMS state in the same database.
type Postgres struct {
	db    *sqlx.DB
	table string
}

// NewPostgres ensures the backing table exists and returns a handle.
func NewPostgres(db *sqlx.DB, table string) (*Postgres, error) {
	if table == "" {
		table = "cms_kv"
	}
	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`, table)
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Postgres{db: db, table: table}, nil
}

func (p *Postgres) Get(key string) (string, bool) {
	var value string
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = $1", p.table)
	if err := p.db.Get(&value, query, key); err != nil {
		return "", false
	}
	return value, true
}

func (p *Postgres) Set(key, value string) error {
	query := fmt.Sprintf(`INSERT INTO %s (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, p.table)
	if _, err := p.db.Exec(query, key, value); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgOutOfDiskSpace {
			return ErrQuotaExceeded
		}
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(key string) {
	query := fmt.Sprintf("DELETE FROM %s WHERE key = $1", p.table)
	_, _ = p.db.Exec(query, key)
}

// Ping verifies database connectivity for readiness checks.
func (p *Postgres) Ping() error {
	if err := p.db.Ping(); err != nil {
		if errors.Is(err, sql.ErrConnDone) {
			return fmt.Errorf("kv database closed: %w", err)
		}
		return err
	}
	return nil
}
