// Package service contains the business logic layer of the blog panel. Each
// entity service wraps a unit of work and applies the cross-cutting rules the
// repositories do not know about: partial updates, tag eager-loading,
// password hashing and login uniqueness.
package service

import (
	"blogtask/database/model"
)

// Crud is the operation surface shared by every entity service. Absent
// entities read as nil, never as an error; GetByNumericID only succeeds for
// roles and fails with repository.ErrNotImplemented everywhere else.
type Crud[T model.Keyed, Q any] interface {
	GetAll() ([]*T, error)
	GetByID(id string) (*T, error)
	GetByNumericID(id int) (*T, error)
	Create(item *T) error
	Update(item *T) error
	Patch(item *T, query Q) (*T, error)
	Delete(item *T) error
}
