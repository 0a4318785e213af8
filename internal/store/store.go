package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketVideos = []byte("videos")
	bucketMeta   = []byte("meta")
)

const keyOrder = "order"

// ErrNotSnapshot indicates the database has no catalog buckets
var ErrNotSnapshot = errors.New("not a catalog snapshot")

// CatalogStore keeps a catalog snapshot in BoltDB.
// Videos are stored as JSON keyed by ID; catalog order is kept separately since
// bolt iterates in key order. Flags are never written.
type CatalogStore struct {
	db       *bolt.DB
	readOnly bool
	mu       sync.RWMutex // Protects memory cache

	// In-memory cache for reads (promoted on access); the only storage in memory-only mode
	cache map[string][]byte
}

// OpenCatalogStore opens (or creates) the snapshot at path.
// An empty path gives a memory-only store.
func OpenCatalogStore(path string, readOnly bool) (*CatalogStore, error) {
	if path == "" {
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if readOnly {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to open catalog snapshot: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second, ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	if !readOnly {
		err = db.Update(func(tx *bolt.Tx) error {
			for _, bucket := range [][]byte{bucketVideos, bucketMeta} {
				if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	return &CatalogStore{db: db, readOnly: readOnly, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(bucket []byte, key string, dest interface{}) (bool, error) {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return true, json.Unmarshal(data, dest)
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return ErrNotSnapshot
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return false, err
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return true, json.Unmarshal(data, dest)
}

// === Videos ===

// SaveVideos replaces the snapshot contents with videos, in order
func (s *CatalogStore) SaveVideos(videos []*domain.Video) error {
	if s.readOnly {
		return errors.New("catalog snapshot opened read-only")
	}

	order := make([]string, len(videos))
	encoded := make(map[string][]byte, len(videos))
	for i, v := range videos {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		order[i] = v.ID
		encoded[v.ID] = data
	}
	orderData, err := json.Marshal(order)
	if err != nil {
		return err
	}

	// Reset memory cache
	s.mu.Lock()
	s.cache = make(map[string][]byte, len(encoded)+1)
	for id, data := range encoded {
		s.cache[string(bucketVideos)+":"+id] = data
	}
	s.cache[string(bucketMeta)+":"+keyOrder] = orderData
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketVideos); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(bucketVideos)
		if err != nil {
			return err
		}
		for id, data := range encoded {
			if err := b.Put([]byte(id), data); err != nil {
				return err
			}
		}
		return tx.Bucket(bucketMeta).Put([]byte(keyOrder), orderData)
	})
}

// LoadVideos returns the snapshot contents in saved order
func (s *CatalogStore) LoadVideos() ([]*domain.Video, error) {
	var order []string
	ok, err := s.get(bucketMeta, keyOrder, &order)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog order: %w", err)
	}
	if !ok {
		return nil, nil
	}

	videos := make([]*domain.Video, 0, len(order))
	for _, id := range order {
		var v domain.Video
		ok, err := s.get(bucketVideos, id, &v)
		if err != nil {
			return nil, fmt.Errorf("failed to read video %q: %w", id, err)
		}
		if !ok {
			return nil, fmt.Errorf("video %q listed in order but missing", id)
		}
		videos = append(videos, &v)
	}
	return videos, nil
}
