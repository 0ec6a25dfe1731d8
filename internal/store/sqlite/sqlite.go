package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/store"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	driverName = "sqlite"
	timeLayout = time.RFC3339Nano
)

type row struct {
	ID        string `db:"id"`
	Kind      string `db:"kind"`
	Date      string `db:"date"`
	Key       string `db:"rkey"`
	Data      string `db:"data"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r row) record() (store.Record, error) {
	createdAt, err := time.Parse(timeLayout, r.CreatedAt)
	if err != nil {
		return store.Record{}, fmt.Errorf("parse created_at of %s: %w", r.ID, err)
	}
	updatedAt, err := time.Parse(timeLayout, r.UpdatedAt)
	if err != nil {
		return store.Record{}, fmt.Errorf("parse updated_at of %s: %w", r.ID, err)
	}
	return store.Record{
		ID:        r.ID,
		Kind:      store.Kind(r.Kind),
		Date:      r.Date,
		Key:       r.Key,
		Data:      json.RawMessage(r.Data),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func toRow(rec store.Record) row {
	data := string(rec.Data)
	if data == "" {
		data = "{}"
	}
	return row{
		ID:        rec.ID,
		Kind:      string(rec.Kind),
		Date:      rec.Date,
		Key:       rec.Key,
		Data:      data,
		CreatedAt: rec.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: rec.UpdatedAt.UTC().Format(timeLayout),
	}
}

// Store is the on-device record store, a single sqlite file.
type Store struct {
	db *sqlx.DB
}

var _ store.Backend = (*Store)(nil)

// Open connects to the sqlite database at path, creating its directory if
// needed, and applies pending migrations. ":memory:" opens a private
// in-memory database.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	// one writer; also keeps ":memory:" a single database
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debugf("sqlite store opened: %s", path)
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get migrations directory: %w", err)
	}
	goose.SetBaseFS(migrationsDir)
	goose.SetLogger(goose.NopLogger())
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

const selectColumns = `SELECT id, kind, date, rkey, data, created_at, updated_at FROM records`

func (s *Store) Get(ctx context.Context, kind store.Kind, date, key string) (*store.Record, error) {
	var r row
	err := s.db.GetContext(ctx, &r, selectColumns+` WHERE kind = ? AND date = ? AND rkey = ?`, string(kind), date, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("%s %s/%s", kind, date, key)
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	rec, err := r.record()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) List(ctx context.Context, kind store.Kind, q store.Query) ([]store.Record, error) {
	query := selectColumns + ` WHERE kind = ?`
	args := []any{string(kind)}
	if q.From != "" {
		query += ` AND date >= ?`
		args = append(args, q.From)
	}
	if q.To != "" {
		query += ` AND date <= ?`
		args = append(args, q.To)
	}
	query += ` ORDER BY date, rkey`

	var rows []row
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	recs := make([]store.Record, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

const upsertQuery = `
	INSERT INTO records (id, kind, date, rkey, data, created_at, updated_at)
	VALUES (:id, :kind, :date, :rkey, :data, :created_at, :updated_at)
	ON CONFLICT (kind, date, rkey) DO UPDATE SET
		data = excluded.data,
		updated_at = excluded.updated_at`

func (s *Store) Put(ctx context.Context, rec store.Record) (*store.Record, error) {
	if _, err := s.db.NamedExecContext(ctx, upsertQuery, toRow(rec)); err != nil {
		return nil, fmt.Errorf("put record: %w", err)
	}
	return s.Get(ctx, rec.Kind, rec.Date, rec.Key)
}

func (s *Store) Delete(ctx context.Context, kind store.Kind, date, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE kind = ? AND date = ? AND rkey = ?`, string(kind), date, key)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("%s %s/%s", kind, date, key)
	}
	return nil
}

const insertQuery = `
	INSERT INTO records (id, kind, date, rkey, data, created_at, updated_at)
	VALUES (:id, :kind, :date, :rkey, :data, :created_at, :updated_at)`

func (s *Store) ReplaceAll(ctx context.Context, records []store.Record) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Errorf("replace all: rollback: %s", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("wipe records: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	seen := make(map[[3]string]bool, len(records))
	for _, rec := range records {
		k := [3]string{string(rec.Kind), rec.Date, rec.Key}
		if seen[k] {
			err = apperr.Validation("duplicate record %s %s/%s", rec.Kind, rec.Date, rec.Key)
			return err
		}
		seen[k] = true
		if _, err = stmt.ExecContext(ctx, toRow(rec)); err != nil {
			return fmt.Errorf("insert record %s: %w", rec.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) Version(ctx context.Context) (int64, error) {
	var version int64
	if err := s.db.GetContext(ctx, &version, `SELECT version FROM data_version WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("get data version: %w", err)
	}
	return version, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
