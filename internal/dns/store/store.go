// Package store persists compiled zones: records are encoded standalone in
// wire form and indexed by owner name and type in a bbolt database. A bloom
// filter screens out definite misses before touching the database, and an
// LRU keeps recently decoded answers.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	bloom "github.com/bits-and-blooms/bloom/v3"
	lru "github.com/hashicorp/golang-lru/v2"
	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/message"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

var (
	bucketRecords = []byte("records")
	bucketMeta    = []byte("meta")
)

// filter sizing: false positives only cost a wasted read, so a modest table
// is plenty.
const (
	bloomMinCapacity = 4096
	bloomFalseRate   = 0.01
)

// Store is a compiled-zone database. Safe for concurrent readers; writes are
// serialized by bbolt and the filter mutex.
type Store struct {
	db    *bbolt.DB
	cache *lru.Cache[string, []message.ResourceRecord]

	mu     sync.RWMutex
	filter *bloom.BloomFilter
}

// Open opens (or creates) the store at path and rebuilds the bloom filter
// from the existing keys. cacheSize bounds the decoded-answer LRU.
func Open(path string, cacheSize int) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRecords); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketMeta)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[string, []message.ResourceRecord](cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, cache: cache}
	if err := s.rebuildFilter(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) rebuildFilter() error {
	var count uint
	if err := s.db.View(func(tx *bbolt.Tx) error {
		count = uint(tx.Bucket(bucketRecords).Stats().KeyN)
		return nil
	}); err != nil {
		return err
	}
	if count < bloomMinCapacity {
		count = bloomMinCapacity
	}
	f := bloom.NewWithEstimates(count, bloomFalseRate)
	if err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(k, _ []byte) error {
			f.Add(k)
			return nil
		})
	}); err != nil {
		return err
	}
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return nil
}

// PutZone stores all records of one zone root, grouped by owner/type key.
// Existing entries under the same keys are replaced.
func (s *Store) PutZone(root string, records []message.ResourceRecord) error {
	grouped := make(map[string][]byte)
	for _, rr := range records {
		encoded, err := encodeRecord(rr)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", rr.Key(), err)
		}
		key := rr.Key()
		// records are concatenated per key, each with a 2-byte length prefix
		grouped[key] = append(grouped[key], byte(len(encoded)>>8), byte(len(encoded)))
		grouped[key] = append(grouped[key], encoded...)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		for key, value := range grouped {
			if err := b.Put([]byte(key), value); err != nil {
				return err
			}
		}
		return tx.Bucket(bucketMeta).Put([]byte("root:"+root), []byte{1})
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	for key := range grouped {
		s.filter.Add([]byte(key))
	}
	s.mu.Unlock()
	for key := range grouped {
		s.cache.Remove(key)
	}
	return nil
}

// Lookup returns the stored records for an owner name and type, or nil when
// none exist.
func (s *Store) Lookup(name domain.Name, t domain.RRType) ([]message.ResourceRecord, error) {
	key := name.Key() + "|" + t.String()

	s.mu.RLock()
	might := s.filter.Test([]byte(key))
	s.mu.RUnlock()
	if !might {
		return nil, nil
	}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	var value []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketRecords).Get([]byte(key))
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if value == nil {
		// bloom false positive
		return nil, nil
	}

	records, err := decodeRecords(value)
	if err != nil {
		return nil, fmt.Errorf("corrupt entry %s: %w", key, err)
	}
	s.cache.Add(key, records)
	return records, nil
}

// Roots returns the zone roots that have been compiled into the store.
func (s *Store) Roots() ([]string, error) {
	var roots []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).ForEach(func(k, _ []byte) error {
			if rest, ok := strings.CutPrefix(string(k), "root:"); ok {
				roots = append(roots, rest)
			}
			return nil
		})
	})
	return roots, err
}

// encodeRecord emits one record standalone. Each record gets a fresh
// non-canonical encoder, so compression pointers never cross record
// boundaries and every stored blob decodes independently. Encodings that do
// not fit the 2-byte length prefix are rejected rather than truncated; a
// maximal RDATA under a long owner name can push a legal record past 64 KiB.
func encodeRecord(rr message.ResourceRecord) ([]byte, error) {
	e := wire.NewEncoder()
	if err := message.EmitRecord(e, rr); err != nil {
		return nil, err
	}
	if e.Len() > 0xFFFF {
		return nil, fmt.Errorf("record too large to store: %d bytes", e.Len())
	}
	out := make([]byte, e.Len())
	copy(out, e.Bytes())
	return out, nil
}

// decodeRecords splits a stored value back into records.
func decodeRecords(value []byte) ([]message.ResourceRecord, error) {
	var records []message.ResourceRecord
	d := wire.NewDecoder(value)
	for d.Remaining() > 0 {
		length, err := d.ReadUint16()
		if err != nil {
			return nil, err
		}
		chunk, err := d.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		rr, err := message.ReadRecord(wire.NewDecoder(chunk))
		if err != nil {
			return nil, err
		}
		records = append(records, rr)
	}
	return records, nil
}
