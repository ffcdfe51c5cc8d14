package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/marquee/internal/migrations"
	"github.com/vmunix/marquee/internal/movie"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the catalog database at path and
// applies migrations.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == ":memory:" {
		// Each connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(migrations.CatalogSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// SQLiteStore keeps imported upstream payloads verbatim and serves them as a
// catalog loader.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLiteStore creates a store over an open, migrated database.
func NewSQLiteStore(db *sql.DB, log *slog.Logger) *SQLiteStore {
	if log == nil {
		log = slog.Default()
	}
	return &SQLiteStore{db: db, log: log}
}

// Name identifies the loader in logs.
func (s *SQLiteStore) Name() string {
	return "sqlite"
}

// Load returns the stored records in import order. Rows whose payload no
// longer decodes as an object are skipped.
func (s *SQLiteStore) Load(ctx context.Context) ([]movie.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM catalog_records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []movie.RawRecord
	skipped := 0
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec movie.RawRecord
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	if skipped > 0 {
		s.log.Warn("skipped malformed stored payloads", "skipped", skipped)
	}
	if skipped > 0 && len(records) == 0 {
		return nil, ErrNoUsableRecords
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Import replaces the stored records with the JSON array read from r, in a
// single transaction. It returns the number of records imported and the
// number of elements skipped.
func (s *SQLiteStore) Import(ctx context.Context, r io.Reader) (imported, skipped int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, fmt.Errorf("read dataset: %w", err)
	}
	elems, skipped, err := decodeElements(data)
	if err != nil {
		return 0, skipped, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, skipped, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_records`); err != nil {
		return 0, skipped, fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO catalog_records (position, movie_id, payload) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, skipped, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range elems {
		if _, err := stmt.ExecContext(ctx, i, e.record.ID, string(e.raw)); err != nil {
			return 0, skipped, fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, skipped, fmt.Errorf("commit: %w", err)
	}

	s.log.Info("dataset imported", "records", len(elems), "skipped", skipped)
	return len(elems), skipped, nil
}
