// Package mlclient implements the ML-backed name detector's pluggable NER
// client and its cross-invocation detection cache.
//
// PersistentCache is the interface for the cross-process NER detection
// cache. It stores original text → marshaled detections so that repeated
// identical note text (common in templated EHR exports) gets a cache hit
// instead of a re-query against the model server.
//
// Two implementations are provided:
//   - memoryCache — in-memory only, used in tests and when no path is configured.
//   - bboltCache  — embedded key-value store (bbolt), used in production.
//
// The interface is intentionally minimal. The detector writes one value at
// a time after a synchronous NER query; reads are per-text lookups keyed by
// the exact input. Batch operations and iteration are not needed.
package mlclient

import (
	"fmt"
	"log"
	"sync"

	bolt "go.etcd.io/bbolt"
)

// PersistentCache is the cross-process NER detection cache interface.
// All implementations must be safe for concurrent use.
type PersistentCache interface {
	// Get returns the cached, JSON-encoded detection list for the given
	// original text, if present.
	Get(original string) (encoded string, ok bool)

	// Set stores original → encoded. Overwrites any existing entry silently.
	Set(original, encoded string)

	// Delete removes original from the cache, if present.
	Delete(original string)

	// Close releases any resources held by the cache (e.g. file handles).
	Close() error
}

// --- memoryCache ---------------------------------------------------------

// memoryCache is a thread-safe in-memory PersistentCache.
// Used in tests and as a fallback when no bbolt path is configured.
type memoryCache struct {
	mu    sync.RWMutex
	store map[string]string
}

func newMemoryCache() PersistentCache {
	return &memoryCache{store: make(map[string]string)}
}

func (c *memoryCache) Get(original string) (string, bool) {
	c.mu.RLock()
	v, ok := c.store[original]
	c.mu.RUnlock()
	return v, ok
}

func (c *memoryCache) Set(original, encoded string) {
	c.mu.Lock()
	c.store[original] = encoded
	c.mu.Unlock()
}

func (c *memoryCache) Delete(original string) {
	c.mu.Lock()
	delete(c.store, original)
	c.mu.Unlock()
}

func (c *memoryCache) Close() error { return nil }

// --- bboltCache ----------------------------------------------------------

const bboltBucket = "ner_cache"

// bboltCache is a PersistentCache backed by an embedded bbolt database.
// Entries survive process restarts. The database file is created at the
// given path if it does not exist.
type bboltCache struct {
	db *bolt.DB
}

// newBboltCache opens (or creates) the bbolt database at path and ensures
// the bucket exists. Returns an error if the file cannot be opened.
func newBboltCache(path string) (PersistentCache, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bbolt cache %q: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bboltBucket))
		return err
	}); err != nil {
		db.Close() //nolint:errcheck // best-effort close on init failure
		return nil, fmt.Errorf("create bbolt bucket: %w", err)
	}

	log.Printf("[MLCLIENT] persistent NER cache opened at %s", path)
	return &bboltCache{db: db}, nil
}

func (c *bboltCache) Get(original string) (string, bool) {
	var encoded string
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bboltBucket))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(original))
		if v != nil {
			encoded = string(v)
		}
		return nil
	})
	if err != nil {
		log.Printf("[MLCLIENT] bbolt Get error: %v", err)
		return "", false
	}
	return encoded, encoded != ""
}

func (c *bboltCache) Set(original, encoded string) {
	if err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bboltBucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found", bboltBucket)
		}
		return b.Put([]byte(original), []byte(encoded))
	}); err != nil {
		log.Printf("[MLCLIENT] bbolt Set error: %v", err)
	}
}

func (c *bboltCache) Delete(original string) {
	if err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bboltBucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(original))
	}); err != nil {
		log.Printf("[MLCLIENT] bbolt Delete error: %v", err)
	}
}

func (c *bboltCache) Close() error {
	return c.db.Close()
}
