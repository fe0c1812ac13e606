package repository

import (
	"reflect"

	"blogtask/database/model"

	"gorm.io/gorm"
)

// customRepos maps an entity type to the constructor of its specialized
// repository. It is the registration container Resolve consults before
// falling back to the generic repository.
var customRepos = map[string]func(db *gorm.DB) any{}

func entityKey[T model.Keyed]() string {
	var zero T
	return reflect.TypeOf(zero).Name()
}

func registerCustom[T model.Keyed](ctor func(db *gorm.DB) Store[T]) {
	customRepos[entityKey[T]()] = func(db *gorm.DB) any { return ctor(db) }
}

func init() {
	registerCustom[model.User](func(db *gorm.DB) Store[model.User] { return NewUsersRepository(db) })
	registerCustom[model.Article](func(db *gorm.DB) Store[model.Article] { return NewArticlesRepository(db) })
	registerCustom[model.Tag](func(db *gorm.DB) Store[model.Tag] { return NewTagsRepository(db) })
	registerCustom[model.Comment](func(db *gorm.DB) Store[model.Comment] { return NewCommentsRepository(db) })
	registerCustom[model.Role](func(db *gorm.DB) Store[model.Role] { return NewRolesRepository(db) })
}

// UnitOfWork resolves and caches one repository instance per entity type for
// the duration of one logical operation, typically one HTTP request. It is
// not meant to be shared across goroutines.
type UnitOfWork struct {
	db      *gorm.DB
	custom  map[string]any
	generic map[string]any
	closed  bool
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db:      db,
		custom:  make(map[string]any),
		generic: make(map[string]any),
	}
}

// Resolve returns the repository for T within this unit of work. When
// preferCustom is set and a specialized repository is registered for T, that
// implementation is returned; otherwise the generic repository is used.
// Repeated calls for the same T and preference return the same instance.
func Resolve[T model.Keyed](u *UnitOfWork, preferCustom bool) Store[T] {
	if u.closed {
		panic("repository: unit of work used after Close")
	}
	key := entityKey[T]()
	if preferCustom {
		if ctor, ok := customRepos[key]; ok {
			if inst, ok := u.custom[key]; ok {
				return inst.(Store[T])
			}
			inst := ctor(u.db)
			u.custom[key] = inst
			return inst.(Store[T])
		}
	}
	if inst, ok := u.generic[key]; ok {
		return inst.(Store[T])
	}
	inst := newRepository[T](u.db)
	u.generic[key] = inst
	return inst
}

// Users returns the specialized user repository for this scope.
func (u *UnitOfWork) Users() *UsersRepository {
	return Resolve[model.User](u, true).(*UsersRepository)
}

// Articles returns the specialized article repository for this scope.
func (u *UnitOfWork) Articles() *ArticlesRepository {
	return Resolve[model.Article](u, true).(*ArticlesRepository)
}

// Tags returns the tag repository for this scope.
func (u *UnitOfWork) Tags() *TagsRepository {
	return Resolve[model.Tag](u, true).(*TagsRepository)
}

// Comments returns the comment repository for this scope.
func (u *UnitOfWork) Comments() *CommentsRepository {
	return Resolve[model.Comment](u, true).(*CommentsRepository)
}

// Roles returns the specialized role repository for this scope.
func (u *UnitOfWork) Roles() *RolesRepository {
	return Resolve[model.Role](u, true).(*RolesRepository)
}

// Close ends the unit of work and drops the cached repositories. The
// underlying connection is pooled by database/sql and returns to the pool on
// its own; Close is idempotent.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	u.custom = nil
	u.generic = nil
	return nil
}
