// Package repository implements the data access layer for the blog entities:
// a generic repository parameterized over one entity type, entity-specific
// repositories layered on top of it, and a unit of work that resolves and
// caches repository instances for the duration of one logical operation.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"blogtask/database/model"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by Update and Delete when the entity is not
	// resident in the working set. Read operations never return it; an
	// absent entity reads as nil.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint covers duplicate primary keys and unsatisfied foreign keys.
	ErrConstraint = errors.New("constraint violation")

	// ErrNotImplemented marks operations deliberately unsupported for an
	// entity type, such as numeric-id lookup outside of roles.
	ErrNotImplemented = errors.New("not implemented")
)

// Store is the CRUD contract every repository satisfies for its entity type.
type Store[T model.Keyed] interface {
	GetAll() []*T
	GetByID(id string) *T
	Create(item *T) error
	Update(item *T) error
	Delete(item *T) error
}

// Repository provides uniform CRUD over one entity type. It owns a working
// set mirroring the backing table, loaded once at construction; every write
// is flushed to the database before returning, so each mutating call is a
// complete, observable transaction. Entities handed out are references into
// the working set.
type Repository[T model.Keyed] struct {
	db    *gorm.DB
	items map[string]*T
}

func newRepository[T model.Keyed](db *gorm.DB) *Repository[T] {
	var all []*T
	if err := db.Find(&all).Error; err != nil {
		// An entity type without a mapped table is a wiring mistake,
		// fatal at first use rather than a runtime condition.
		panic(fmt.Sprintf("repository: cannot load table for %T: %v", *new(T), err))
	}
	items := make(map[string]*T, len(all))
	for _, item := range all {
		items[(*item).Key()] = item
	}
	return &Repository[T]{db: db, items: items}
}

// GetAll returns every loaded entity. Order is unspecified.
func (r *Repository[T]) GetAll() []*T {
	out := make([]*T, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out
}

// GetByID returns the entity with the given primary key, or nil when absent.
func (r *Repository[T]) GetByID(id string) *T {
	return r.items[id]
}

// Create adds the entity to the working set and flushes it to the database.
// The working set is updated after the insert so database-assigned keys are
// already populated.
func (r *Repository[T]) Create(item *T) error {
	if key := (*item).Key(); key != "" {
		if _, ok := r.items[key]; ok {
			return fmt.Errorf("%w: duplicate key %s", ErrConstraint, key)
		}
	}
	if err := r.db.Create(item).Error; err != nil {
		return wrapWriteErr(err)
	}
	r.items[(*item).Key()] = item
	return nil
}

// Update flushes a modified entity. The entity must already be resident in
// the working set, identified by its primary key.
func (r *Repository[T]) Update(item *T) error {
	key := (*item).Key()
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("%w: key %s", ErrNotFound, key)
	}
	if err := r.db.Save(item).Error; err != nil {
		return wrapWriteErr(err)
	}
	r.items[key] = item
	return nil
}

// Delete removes the entity from the working set and the database.
func (r *Repository[T]) Delete(item *T) error {
	key := (*item).Key()
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("%w: key %s", ErrNotFound, key)
	}
	if err := r.db.Delete(item).Error; err != nil {
		return wrapWriteErr(err)
	}
	delete(r.items, key)
	return nil
}

// wrapWriteErr classifies driver errors so callers can test for constraint
// violations without depending on the SQLite error text.
func wrapWriteErr(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "constraint") || strings.Contains(msg, "unique") || strings.Contains(msg, "foreign key") {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
