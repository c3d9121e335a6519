// Package recycle implements the recycle bin: a single tagged-union store
// of soft-deleted records. Books, categories, accounts and transactions
// all land here on deletion and can be restored from their JSON payloads.
package recycle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

const bucketItems = "recycled"

// DefaultRetention is how long deleted items stay visible in the bin.
const DefaultRetention = 30 * 24 * time.Hour

// Bin is a bbolt-backed recycle bin. Items live in per-book nested
// buckets keyed by their original id.
type Bin struct {
	db        *bolt.DB
	retention time.Duration
}

// Open creates or opens the bin database at the given path.
func Open(path string, retention time.Duration) (*Bin, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bin directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bin database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketItems))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bin bucket: %w", err)
	}

	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Bin{db: db, retention: retention}, nil
}

// Close closes the bin database.
func (b *Bin) Close() error {
	return b.db.Close()
}

// Put records a deleted entity. The payload must be the JSON encoding of
// the original record so restore can reconstruct it.
func (b *Bin) Put(item models.RecycledItem) error {
	if item.DeletedAt.IsZero() {
		item.DeletedAt = time.Now().UTC()
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal recycled item: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		book, err := tx.Bucket([]byte(bucketItems)).CreateBucketIfNotExists([]byte(item.BookID))
		if err != nil {
			return fmt.Errorf("failed to create book bucket: %w", err)
		}
		return book.Put([]byte(item.OriginalID), data)
	})
}

// List returns the book's recycled items inside the retention window,
// most recently deleted first.
func (b *Bin) List(bookID string) ([]models.RecycledItem, error) {
	cutoff := time.Now().Add(-b.retention)

	var items []models.RecycledItem
	err := b.db.View(func(tx *bolt.Tx) error {
		book := tx.Bucket([]byte(bucketItems)).Bucket([]byte(bookID))
		if book == nil {
			return nil
		}
		return book.ForEach(func(_, v []byte) error {
			var item models.RecycledItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal recycled item: %w", err)
			}
			if item.DeletedAt.After(cutoff) {
				items = append(items, item)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].DeletedAt.After(items[j].DeletedAt)
	})
	return items, nil
}

// Take removes an item from the bin and returns it, for restore.
func (b *Bin) Take(bookID, originalID string) (*models.RecycledItem, error) {
	var item models.RecycledItem
	err := b.db.Update(func(tx *bolt.Tx) error {
		book := tx.Bucket([]byte(bucketItems)).Bucket([]byte(bookID))
		if book == nil {
			return fmt.Errorf("recycled item %s: %w", originalID, storage.ErrNotFound)
		}
		data := book.Get([]byte(originalID))
		if data == nil {
			return fmt.Errorf("recycled item %s: %w", originalID, storage.ErrNotFound)
		}
		if err := json.Unmarshal(data, &item); err != nil {
			return fmt.Errorf("failed to unmarshal recycled item: %w", err)
		}
		return book.Delete([]byte(originalID))
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Purge drops every item deleted before the cutoff and reports how many
// went. Meant to run periodically; listing already hides expired items.
func (b *Bin) Purge(olderThan time.Time) (int, error) {
	purged := 0
	err := b.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket([]byte(bucketItems))
		return root.ForEachBucket(func(name []byte) error {
			book := root.Bucket(name)
			var expired [][]byte
			err := book.ForEach(func(k, v []byte) error {
				var item models.RecycledItem
				if err := json.Unmarshal(v, &item); err != nil {
					return fmt.Errorf("failed to unmarshal recycled item: %w", err)
				}
				if item.DeletedAt.Before(olderThan) {
					expired = append(expired, append([]byte(nil), k...))
				}
				return nil
			})
			if err != nil {
				return err
			}
			for _, k := range expired {
				if err := book.Delete(k); err != nil {
					return err
				}
				purged++
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// Recycle marshals an entity and puts it in the bin under the given kind.
func (b *Bin) Recycle(kind models.RecycledKind, bookID, originalID string, entity any) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", kind, err)
	}
	return b.Put(models.RecycledItem{
		Kind:       kind,
		OriginalID: originalID,
		BookID:     bookID,
		Payload:    payload,
	})
}
