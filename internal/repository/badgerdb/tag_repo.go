package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"cattags/internal/domain"
)

// TagPrefix is the key prefix for tags. Keys are tag:<normalized value>.
const TagPrefix = "tag:"

// Open opens a badger database at path. An empty path opens an in-memory database.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}

// tagRecord is the JSON value stored under each tag key.
type tagRecord struct {
	ID  string `json:"id"`
	Tag string `json:"tag"`
}

type tagRepository struct {
	db *badger.DB
}

// NewTagRepository returns a domain.TagRepository stored in badger.
func NewTagRepository(db *badger.DB) domain.TagRepository {
	return &tagRepository{db: db}
}

func tagKey(value string) []byte {
	return []byte(TagPrefix + strings.ToLower(value))
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	prefix := []byte(TagPrefix)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Keys iterate in byte order, so tags come back sorted by value.
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				var rec tagRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("unmarshal tag: %w", err)
				}
				tags = append(tags, &domain.Tag{ID: rec.ID, Value: rec.Tag})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) Exists(ctx context.Context, value string) (bool, error) {
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = exists(txn, value)
		return err
	})
	return found, err
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	rec := tagRecord{ID: uuid.New().String(), Tag: strings.ToLower(tag.Value)}
	err := r.db.Update(func(txn *badger.Txn) error {
		found, err := exists(txn, rec.Tag)
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("tag %s: %w", rec.Tag, domain.ErrTagExists)
		}
		return put(txn, rec)
	})
	if err != nil {
		return err
	}
	tag.ID, tag.Value = rec.ID, rec.Tag
	return nil
}

// Update moves the record to the new key inside one transaction, keeping its ID.
func (r *tagRepository) Update(ctx context.Context, oldValue, newValue string) (*domain.Tag, error) {
	var rec tagRecord
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		rec, err = get(txn, oldValue)
		if err != nil {
			return err
		}
		taken, err := exists(txn, newValue)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("tag %s: %w", newValue, domain.ErrTagExists)
		}
		if err := txn.Delete(tagKey(oldValue)); err != nil {
			return err
		}
		rec.Tag = strings.ToLower(newValue)
		return put(txn, rec)
	})
	if err != nil {
		return nil, err
	}
	return &domain.Tag{ID: rec.ID, Value: rec.Tag}, nil
}

func (r *tagRepository) Delete(ctx context.Context, value string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		found, err := exists(txn, value)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrTagNotFound
		}
		return txn.Delete(tagKey(value))
	})
}

func exists(txn *badger.Txn, value string) (bool, error) {
	_, err := txn.Get(tagKey(value))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func get(txn *badger.Txn, value string) (tagRecord, error) {
	var rec tagRecord
	item, err := txn.Get(tagKey(value))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return rec, domain.ErrTagNotFound
		}
		return rec, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	if err != nil {
		return rec, fmt.Errorf("unmarshal tag: %w", err)
	}
	return rec, nil
}

func put(txn *badger.Txn, rec tagRecord) error {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tag: %w", err)
	}
	return txn.Set(tagKey(rec.Tag), encoded)
}
