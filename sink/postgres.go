package sink

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Postgres records entries in the conversion_log table.
type Postgres struct {
	db *sqlx.DB
}

// OpenPostgres connects to the given DSN and verifies the connection.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS conversion_log (
	id UUID PRIMARY KEY,
	source_path TEXT NOT NULL,
	document TEXT NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the log table when it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, schema)
	return err
}

// Record implements Sink.
func (p *Postgres) Record(ctx context.Context, e Entry) error {
	_, err := p.db.NamedExecContext(ctx, `
		INSERT INTO conversion_log (id, source_path, document, completed_at)
		VALUES (:id, :source_path, :document, :completed_at)
	`, e)
	return err
}

// Close releases the database handle.
func (p *Postgres) Close() error { return p.db.Close() }
