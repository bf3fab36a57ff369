// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/moodshelf/internal/config"
	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

const backendDuckDB = "duckdb"

const itemColumns = "id, kind, name, cluster_id, happy, sad, stress, calm, excited, tired"

var schemaQueries = []string{
	`CREATE TABLE IF NOT EXISTS catalog_items (
		id         BIGINT  NOT NULL,
		kind       VARCHAR NOT NULL,
		name       VARCHAR NOT NULL,
		cluster_id INTEGER NOT NULL CHECK (cluster_id BETWEEN 1 AND 6),
		happy      INTEGER NOT NULL DEFAULT 0,
		sad        INTEGER NOT NULL DEFAULT 0,
		stress     INTEGER NOT NULL DEFAULT 0,
		calm       INTEGER NOT NULL DEFAULT 0,
		excited    INTEGER NOT NULL DEFAULT 0,
		tired      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (kind, id)
	)`,
	// A secondary index on cluster_id makes DuckDB refuse to move a row
	// between clusters on conflict. Files created by older builds still carry it.
	`DROP INDEX IF EXISTS idx_catalog_kind_cluster`,
}

const upsertQuery = "INSERT INTO catalog_items (" + itemColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)" +
	" ON CONFLICT (kind, id) DO UPDATE SET" +
	" name = excluded.name, cluster_id = excluded.cluster_id," +
	" happy = excluded.happy, sad = excluded.sad, stress = excluded.stress," +
	" calm = excluded.calm, excited = excluded.excited, tired = excluded.tired"

// DuckDBStore keeps the catalogs in a single DuckDB table.
type DuckDBStore struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// NewDuckDBStore opens (or creates) the DuckDB file and ensures the schema.
// Path ":memory:" gives a process-local database.
func NewDuckDBStore(cfg *config.DatabaseConfig) (*DuckDBStore, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, numThreads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &DuckDBStore{conn: conn, cfg: cfg}
	s.configureConnectionPool()

	if err := s.createTables(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Int("threads", numThreads).Msg("DuckDB catalog opened")
	return s, nil
}

func (s *DuckDBStore) configureConnectionPool() {
	s.conn.SetMaxOpenConns(runtime.NumCPU())
	s.conn.SetMaxIdleConns(2)
	s.conn.SetConnMaxLifetime(time.Hour)
	s.conn.SetConnMaxIdleTime(5 * time.Minute)
}

func (s *DuckDBStore) createTables() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, q := range schemaQueries {
		if _, err := s.conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Backend implements CatalogStore.
func (s *DuckDBStore) Backend() string { return backendDuckDB }

// CandidatesByCluster implements CatalogStore.
func (s *DuckDBStore) CandidatesByCluster(ctx context.Context, kind models.Kind, clusterID, limit int) (items []models.CatalogItem, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(backendDuckDB, "candidates_by_cluster", time.Since(start), err) }()

	query := "SELECT " + itemColumns + " FROM catalog_items WHERE kind = ? AND cluster_id = ? ORDER BY random()"
	args := []any{string(kind), clusterID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	items, err = s.queryItems(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s cluster %d: %w", kind, clusterID, err)
	}
	return items, nil
}

// ListByKind implements CatalogStore.
func (s *DuckDBStore) ListByKind(ctx context.Context, kind models.Kind) (items []models.CatalogItem, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(backendDuckDB, "list_by_kind", time.Since(start), err) }()

	items, err = s.queryItems(ctx,
		"SELECT "+itemColumns+" FROM catalog_items WHERE kind = ? ORDER BY cluster_id, id",
		string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, nil
}

// Get implements CatalogStore.
func (s *DuckDBStore) Get(ctx context.Context, kind models.Kind, id int64) (models.CatalogItem, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM catalog_items WHERE kind = ? AND id = ?", string(kind), id)

	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogItem{}, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return it, nil
}

// Upsert implements CatalogStore. The batch is written in one transaction.
func (s *DuckDBStore) Upsert(ctx context.Context, items []models.CatalogItem) (err error) {
	if len(items) == 0 {
		return nil
	}
	if err := validateItems(items); err != nil {
		return err
	}

	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(backendDuckDB, "upsert", time.Since(start), err) }()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertQuery)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := range items {
		it := &items[i]
		if _, err = stmt.ExecContext(ctx,
			it.ID, string(it.Kind), it.Name, it.ClusterID,
			it.Happy, it.Sad, it.Stress, it.Calm, it.Excited, it.Tired,
		); err != nil {
			return fmt.Errorf("upsert %s %d: %w", it.Kind, it.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

// Count implements CatalogStore.
func (s *DuckDBStore) Count(ctx context.Context, kind models.Kind) (int, error) {
	var n int
	if err := s.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM catalog_items WHERE kind = ?", string(kind)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

// Ping implements CatalogStore.
func (s *DuckDBStore) Ping(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return s.conn.PingContext(ctx)
}

// Close checkpoints the WAL and closes the connection pool.
func (s *DuckDBStore) Close() error {
	if s.conn == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := s.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
	}
	return s.conn.Close()
}

func (s *DuckDBStore) queryItems(ctx context.Context, query string, args ...any) ([]models.CatalogItem, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	var items []models.CatalogItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(r rowScanner) (models.CatalogItem, error) {
	var (
		it   models.CatalogItem
		kind string
	)
	err := r.Scan(&it.ID, &kind, &it.Name, &it.ClusterID,
		&it.Happy, &it.Sad, &it.Stress, &it.Calm, &it.Excited, &it.Tired)
	it.Kind = models.Kind(kind)
	return it, err
}
