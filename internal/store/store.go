package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store owns the current dataset: an in-memory record slot with
// wholesale-replace semantics, mirrored to a SQLite snapshot so a
// restart restores the last upload. All access goes through the
// mutex; the last writer wins on concurrent replaces.
type Store struct {
	mu      sync.RWMutex
	records []model.CanonicalRecord
	meta    model.DatasetMeta

	db  *sqlx.DB
	log *zap.Logger
}

// Open opens (or creates) the SQLite snapshot database, initializes
// the schema and loads the persisted dataset if one exists.
func Open(dbPath string, log *zap.Logger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite runs best on a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, log: log}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.loadSnapshot(); err != nil {
		// A corrupt snapshot should not block startup; the next
		// upload overwrites it anyway.
		log.Warn("failed to load dataset snapshot", zap.Error(err))
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Replace swaps in a new dataset and persists it. The previous dataset
// is discarded entirely; there is no incremental merge.
func (s *Store) Replace(records []model.CanonicalRecord, meta model.DatasetMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	meta.TotalRecords = len(records)
	meta.LastUpdated = time.Now().UTC()
	s.meta = meta

	if err := s.saveSnapshot(); err != nil {
		s.log.Warn("failed to persist dataset snapshot", zap.Error(err))
	}
	return nil
}

// Records returns the current record set. The slice must be treated as
// read-only; records are never mutated after creation.
func (s *Store) Records() []model.CanonicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Meta returns the current dataset metadata.
func (s *Store) Meta() model.DatasetMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Count returns the number of records currently loaded.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear drops the current dataset from memory and from the snapshot.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.meta = model.DatasetMeta{}

	if _, err := s.db.Exec(`DELETE FROM dataset_snapshot`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}

// LogImport appends one import batch to the audit log.
func (s *Store) LogImport(report model.ImportReport) error {
	_, err := s.db.Exec(`
		INSERT INTO import_log (
			batch_id, filename, total_rows, imported,
			dates_defaulted, scores_defaulted, stores_synthesized,
			duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.BatchID, report.Filename, report.TotalRows, report.Imported,
		report.DatesDefaulted, report.ScoresDefaulted, report.StoresSynthesized,
		report.Duration.Milliseconds(), report.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to log import: %w", err)
	}
	return nil
}

// ImportHistory returns the most recent import batches, newest first.
func (s *Store) ImportHistory(limit int) ([]model.ImportReport, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Queryx(`
		SELECT batch_id, filename, total_rows, imported,
		       dates_defaulted, scores_defaulted, stores_synthesized,
		       duration_ms, created_at
		FROM import_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import log: %w", err)
	}
	defer rows.Close()

	var history []model.ImportReport
	for rows.Next() {
		var (
			r          model.ImportReport
			durationMS int64
			createdAt  string
		)
		if err := rows.Scan(
			&r.BatchID, &r.Filename, &r.TotalRows, &r.Imported,
			&r.DatesDefaulted, &r.ScoresDefaulted, &r.StoresSynthesized,
			&durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan import log row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.Timestamp = t
		}
		history = append(history, r)
	}
	return history, rows.Err()
}

// Close closes the snapshot database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) saveSnapshot() error {
	recordsJSON, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	metaJSON, err := json.Marshal(s.meta)
	if err != nil {
		return fmt.Errorf("failed to marshal meta: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO dataset_snapshot (id, records, meta, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			records = excluded.records,
			meta = excluded.meta,
			updated_at = excluded.updated_at`,
		string(recordsJSON), string(metaJSON), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *Store) loadSnapshot() error {
	var recordsJSON, metaJSON string
	err := s.db.QueryRow(`SELECT records, meta FROM dataset_snapshot WHERE id = 1`).
		Scan(&recordsJSON, &metaJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	var records []model.CanonicalRecord
	if err := json.Unmarshal([]byte(recordsJSON), &records); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	var meta model.DatasetMeta
	if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return fmt.Errorf("failed to unmarshal meta: %w", err)
	}

	s.records = records
	s.meta = meta
	s.log.Info("restored dataset snapshot",
		zap.Int("records", len(records)),
		zap.Time("lastUpdated", meta.LastUpdated))
	return nil
}
