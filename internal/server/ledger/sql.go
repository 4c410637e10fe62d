package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/raptorboost/internal/dbx"
	"github.com/dmitrijs2005/raptorboost/internal/digest"
	"github.com/dmitrijs2005/raptorboost/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

var _ Repository = (*SQLRepository)(nil)

// dialect holds what differs between the SQL backends.
type dialect struct {
	driver  string
	goose   string
	dir     string
	upsert  string
	event   string
	listing string
}

var postgres = dialect{
	driver: "pgx",
	goose:  "pgx",
	dir:    migrations.PostgresDir,
	upsert: `
		INSERT INTO bindings (transfer, name, sha256, bound_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (transfer, name)
		DO UPDATE SET sha256 = EXCLUDED.sha256, bound_at = EXCLUDED.bound_at;
	`,
	event:   `INSERT INTO binding_events (transfer, name, sha256, bound_at) VALUES ($1, $2, $3, $4);`,
	listing: `SELECT transfer, name, sha256, bound_at FROM bindings WHERE transfer = $1 ORDER BY name`,
}

var sqlite = dialect{
	driver: "sqlite",
	goose:  "sqlite3",
	dir:    migrations.SQLiteDir,
	upsert: `
		INSERT INTO bindings (transfer, name, sha256, bound_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (transfer, name)
		DO UPDATE SET sha256 = excluded.sha256, bound_at = excluded.bound_at;
	`,
	event:   `INSERT INTO binding_events (transfer, name, sha256, bound_at) VALUES (?, ?, ?, ?);`,
	listing: `SELECT transfer, name, sha256, bound_at FROM bindings WHERE transfer = ? ORDER BY name`,
}

// SQLRepository keeps the current bindings plus an append-only history of
// every binding made, in PostgreSQL or SQLite.
type SQLRepository struct {
	db *sql.DB
	d  dialect
}

func NewPostgresRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, d: postgres}
}

func NewSQLiteRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, d: sqlite}
}

// OpenPostgres connects through the pgx driver and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*SQLRepository, error) {
	return open(ctx, postgres, dsn)
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLRepository, error) {
	return open(ctx, sqlite, "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
}

func open(ctx context.Context, d dialect, dsn string) (*SQLRepository, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if d.driver == sqlite.driver {
		// A single connection serializes writers instead of failing them with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := runMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return &SQLRepository{db: db, d: d}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, d dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(d.goose); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, d.dir)
}

func (r *SQLRepository) Record(ctx context.Context, b Binding) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, r.d.upsert, b.Transfer, b.Name, b.Digest.Hex(), b.BoundAt); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if _, err := tx.ExecContext(ctx, r.d.event, b.Transfer, b.Name, b.Digest.Hex(), b.BoundAt); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *SQLRepository) List(ctx context.Context, transfer string) ([]Binding, error) {
	rows, err := r.db.QueryContext(ctx, r.d.listing, transfer)
	if err != nil {
		return nil, fmt.Errorf("failed to select bindings: %w", err)
	}
	defer rows.Close()

	var result []Binding
	for rows.Next() {
		var (
			b   Binding
			hex string
		)
		if err := rows.Scan(&b.Transfer, &b.Name, &hex, &b.BoundAt); err != nil {
			return nil, err
		}
		if b.Digest, err = digest.Parse(hex); err != nil {
			return nil, err
		}
		b.BoundAt = b.BoundAt.UTC()
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}
