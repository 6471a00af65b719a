// Package kvstore keeps each aggregate as one JSON document in Badger, the
// same shape the browser build keeps in local storage.
package kvstore

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/dgraph-io/badger/v4"
)

const (
	KeyPantries = "crenza_v5_pantries"
	KeyShopping = "crenza_v5_shopping"
	KeyDiets    = "crenza_v5_diets"
	KeySettings = "crenza_v5_settings"
)

func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open badger at %q: %w", domain.ErrPersistence, path, err)
	}
	return db, nil
}

// Aggregate stores a whole T under a single key. Load of a missing key
// returns a zero T.
type Aggregate[T any] struct {
	db  *badger.DB
	key []byte
}

func NewAggregate[T any](db *badger.DB, key string) *Aggregate[T] {
	return &Aggregate[T]{db: db, key: []byte(key)}
}

func (a *Aggregate[T]) Load(ctx context.Context) (*T, error) {
	v, _, err := a.get(ctx)
	return v, err
}

// get reports found=false when the key has never been written.
func (a *Aggregate[T]) get(ctx context.Context) (*T, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, a.fail("load", err)
	}

	out := new(T)
	found := false
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(a.key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil {
		return nil, false, a.fail("load", err)
	}
	return out, found, nil
}

func (a *Aggregate[T]) Save(ctx context.Context, v *T) error {
	if err := ctx.Err(); err != nil {
		return a.fail("save", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return a.fail("save", err)
	}
	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(a.key, data)
	})
	return a.fail("save", err)
}

func (a *Aggregate[T]) fail(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrPersistence, op, a.key, err)
}

func NewPantryStore(db *badger.DB) pantry.PantryRepository {
	return NewAggregate[pantry.Inventory](db, KeyPantries)
}

func NewShoppingStore(db *badger.DB) shopping.ShoppingRepository {
	return NewAggregate[shopping.List](db, KeyShopping)
}

func NewDietStore(db *badger.DB) diet.DietRepository {
	return NewAggregate[diet.Book](db, KeyDiets)
}

type settingsStore struct {
	doc      *Aggregate[settings.Settings]
	defaults settings.Settings
}

func NewSettingsStore(db *badger.DB, defaults settings.Settings) settings.SettingsRepository {
	return &settingsStore{doc: NewAggregate[settings.Settings](db, KeySettings), defaults: defaults}
}

func (s *settingsStore) Load(ctx context.Context) (settings.Settings, error) {
	v, found, err := s.doc.get(ctx)
	if err != nil {
		return s.defaults, err
	}
	if !found || v.AlertDays < 0 {
		return s.defaults, nil
	}
	return *v, nil
}

func (s *settingsStore) Save(ctx context.Context, v settings.Settings) error {
	return s.doc.Save(ctx, &v)
}
