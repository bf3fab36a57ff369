// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package database

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moodshelf/internal/logging"
	"github.com/tomtom215/moodshelf/internal/metrics"
	"github.com/tomtom215/moodshelf/internal/models"
)

const backendBadger = "badger"

// Key layout:
//
//	item:<kind>:<cluster>:<id>  -> JSON CatalogItem
//	idx:<kind>:<id>             -> cluster id (so a cluster change removes the old item key)
const (
	itemPrefix  = "item:"
	indexPrefix = "idx:"
)

// BadgerStore keeps the catalogs in an embedded Badger key-value store.
type BadgerStore struct {
	db *badger.DB

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewBadgerStore opens the store at path. An empty path runs fully in memory.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().Str("path", path).Bool("in_memory", path == "").Msg("Badger catalog opened")
	return &BadgerStore{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // sampling order, not security
	}, nil
}

func itemKey(kind models.Kind, clusterID int, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%d:%020d", itemPrefix, kind, clusterID, id))
}

func clusterPrefix(kind models.Kind, clusterID int) []byte {
	return []byte(fmt.Sprintf("%s%s:%d:", itemPrefix, kind, clusterID))
}

func kindPrefix(kind models.Kind) []byte {
	return []byte(fmt.Sprintf("%s%s:", itemPrefix, kind))
}

func indexKey(kind models.Kind, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%d", indexPrefix, kind, id))
}

// Backend implements CatalogStore.
func (s *BadgerStore) Backend() string { return backendBadger }

// CandidatesByCluster implements CatalogStore.
func (s *BadgerStore) CandidatesByCluster(ctx context.Context, kind models.Kind, clusterID, limit int) (items []models.CatalogItem, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(backendBadger, "candidates_by_cluster", time.Since(start), err) }()

	items, err = s.scan(ctx, clusterPrefix(kind, clusterID))
	if err != nil {
		return nil, fmt.Errorf("scan %s cluster %d: %w", kind, clusterID, err)
	}

	s.rngMu.Lock()
	s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	s.rngMu.Unlock()

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ListByKind implements CatalogStore.
func (s *BadgerStore) ListByKind(ctx context.Context, kind models.Kind) (items []models.CatalogItem, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(backendBadger, "list_by_kind", time.Since(start), err) }()

	items, err = s.scan(ctx, kindPrefix(kind))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", kind, err)
	}
	// Keys already sort by cluster then zero-padded id; negative ids would not.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ClusterID != items[j].ClusterID {
			return items[i].ClusterID < items[j].ClusterID
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// Get implements CatalogStore.
func (s *BadgerStore) Get(_ context.Context, kind models.Kind, id int64) (models.CatalogItem, error) {
	var it models.CatalogItem
	err := s.db.View(func(txn *badger.Txn) error {
		idx, err := txn.Get(indexKey(kind, id))
		if err != nil {
			return err
		}
		var clusterID int
		if err := idx.Value(func(val []byte) error {
			clusterID, err = strconv.Atoi(string(val))
			return err
		}); err != nil {
			return err
		}

		item, err := txn.Get(itemKey(kind, clusterID, id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &it)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.CatalogItem{}, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return it, nil
}

// Upsert implements CatalogStore. The batch is written in one transaction.
func (s *BadgerStore) Upsert(_ context.Context, items []models.CatalogItem) (err error) {
	if len(items) == 0 {
		return nil
	}
	if err := validateItems(items); err != nil {
		return err
	}

	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(backendBadger, "upsert", time.Since(start), err) }()

	err = s.db.Update(func(txn *badger.Txn) error {
		for i := range items {
			if err := s.putItem(txn, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (s *BadgerStore) putItem(txn *badger.Txn, it *models.CatalogItem) error {
	// Drop the previous item key if the item moved to another cluster.
	idx, err := txn.Get(indexKey(it.Kind, it.ID))
	switch {
	case err == nil:
		var prev int
		if verr := idx.Value(func(val []byte) error {
			var perr error
			prev, perr = strconv.Atoi(string(val))
			return perr
		}); verr != nil {
			return verr
		}
		if prev != it.ClusterID {
			if err := txn.Delete(itemKey(it.Kind, prev, it.ID)); err != nil {
				return err
			}
		}
	case !errors.Is(err, badger.ErrKeyNotFound):
		return err
	}

	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("marshal %s %d: %w", it.Kind, it.ID, err)
	}
	if err := txn.Set(itemKey(it.Kind, it.ClusterID, it.ID), data); err != nil {
		return err
	}
	return txn.Set(indexKey(it.Kind, it.ID), []byte(strconv.Itoa(it.ClusterID)))
}

// Count implements CatalogStore.
func (s *BadgerStore) Count(ctx context.Context, kind models.Kind) (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := kindPrefix(kind)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

// Ping implements CatalogStore.
func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db == nil || s.db.IsClosed() {
		return fmt.Errorf("badger store is closed")
	}
	return nil
}

// Close implements CatalogStore.
func (s *BadgerStore) Close() error {
	if s.db == nil || s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

func (s *BadgerStore) scan(ctx context.Context, prefix []byte) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var ci models.CatalogItem
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &ci)
			}); err != nil {
				return err
			}
			items = append(items, ci)
		}
		return nil
	})
	return items, err
}
