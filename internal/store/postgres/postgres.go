package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store keeps records in a shared postgres database. Pair it with a redis
// key locker when several processes write to the same database.
type Store struct {
	db *pgxpool.Pool
}

var _ store.Backend = (*Store)(nil)

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Migrate applies pending schema migrations.
func (s *Store) Migrate(ctx context.Context) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.records.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get migrations directory: %w", err)
	}
	goose.SetBaseFS(migrationsDir)

	db := stdlib.OpenDBFromPool(s.db)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Debugln("postgres store migrations completed")
	return nil
}

const selectColumns = `SELECT id::text, kind, date, rkey, data, created_at, updated_at FROM records`

func scanRecord(row pgx.Row) (*store.Record, error) {
	var rec store.Record
	var kind string
	var data []byte
	if err := row.Scan(&rec.ID, &kind, &rec.Date, &rec.Key, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Kind = store.Kind(kind)
	rec.Data = data
	return &rec, nil
}

func (s *Store) Get(ctx context.Context, kind store.Kind, date, key string) (_ *store.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec, err := scanRecord(s.db.QueryRow(
		ctx,
		selectColumns+` WHERE kind = $1 AND date = $2 AND rkey = $3`,
		string(kind), date, key,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("%s %s/%s", kind, date, key)
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

func (s *Store) List(ctx context.Context, kind store.Kind, q store.Query) (_ []store.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := selectColumns + ` WHERE kind = $1`
	args := []any{string(kind)}
	if q.From != "" {
		args = append(args, q.From)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if q.To != "" {
		args = append(args, q.To)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	query += ` ORDER BY date, rkey`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var recs []store.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

func (s *Store) Put(ctx context.Context, rec store.Record) (_ *store.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	saved, err := scanRecord(s.db.QueryRow(
		ctx,
		`INSERT INTO records (id, kind, date, rkey, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (kind, date, rkey) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
		RETURNING id::text, kind, date, rkey, data, created_at, updated_at`,
		rec.ID, string(rec.Kind), rec.Date, rec.Key, jsonData(rec), rec.CreatedAt, rec.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("put record: %w", err)
	}
	return saved, nil
}

func (s *Store) Delete(ctx context.Context, kind store.Kind, date, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM records WHERE kind = $1 AND date = $2 AND rkey = $3`,
		string(kind), date, key,
	)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("%s %s/%s", kind, date, key)
	}
	return nil
}

func (s *Store) ReplaceAll(ctx context.Context, records []store.Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.replace_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("replace all: rollback: %s", rbErr)
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("wipe records: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO records (id, kind, date, rkey, data, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rec.ID, string(rec.Kind), rec.Date, rec.Key, jsonData(rec), rec.CreatedAt, rec.UpdatedAt,
		)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			err = apperr.Validation("backup contains duplicate records: %s", err)
			return err
		}
		return fmt.Errorf("insert records: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) Version(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.version")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var version int64
	if err := s.db.QueryRow(ctx, `SELECT version FROM data_version WHERE id = 1`).Scan(&version); err != nil {
		return 0, fmt.Errorf("get data version: %w", err)
	}
	return version, nil
}

// Close is a no-op, the pool is closed by whoever created it.
func (s *Store) Close() error {
	return nil
}

func jsonData(rec store.Record) string {
	if len(rec.Data) == 0 {
		return "{}"
	}
	return string(rec.Data)
}
