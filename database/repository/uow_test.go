package repository

import (
	"testing"

	"blogtask/database"
	"blogtask/database/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIdentityStability(t *testing.T) {
	setup(t)
	uow := NewUnitOfWork(database.GetDB())
	defer uow.Close()

	r1 := Resolve[model.Article](uow, true)
	r2 := Resolve[model.Article](uow, true)
	assert.Same(t, r1, r2)

	// The typed accessor shares the same cached instance.
	assert.Same(t, r1, Store[model.Article](uow.Articles()))
}

func TestResolveMutationVisibleThroughBothHandles(t *testing.T) {
	setup(t)
	uow := NewUnitOfWork(database.GetDB())
	defer uow.Close()

	users := NewUsersRepository(database.GetDB())
	owner := &model.User{Id: uuid.NewString(), Login: "author", Password: "x"}
	require.NoError(t, users.Create(owner))

	r1 := Resolve[model.Article](uow, true)
	r2 := Resolve[model.Article](uow, true)

	article := &model.Article{Id: uuid.NewString(), Title: "t", Text: "x", UserId: owner.Id}
	require.NoError(t, r1.Create(article))

	assert.NotNil(t, r2.GetByID(article.Id))
}

func TestResolvePrefersCustomRepository(t *testing.T) {
	setup(t)
	uow := NewUnitOfWork(database.GetDB())
	defer uow.Close()

	custom := Resolve[model.User](uow, true)
	_, ok := custom.(*UsersRepository)
	assert.True(t, ok, "expected the specialized user repository")

	generic := Resolve[model.User](uow, false)
	_, ok = generic.(*Repository[model.User])
	assert.True(t, ok, "expected the generic fallback repository")
	assert.NotSame(t, custom, generic)

	// Each preference caches its own instance.
	assert.Same(t, generic, Resolve[model.User](uow, false))
}

func TestUnitOfWorkScopesAreIndependent(t *testing.T) {
	setup(t)
	uow1 := NewUnitOfWork(database.GetDB())
	defer uow1.Close()
	uow2 := NewUnitOfWork(database.GetDB())
	defer uow2.Close()

	assert.NotSame(t, Store[model.User](uow1.Users()), Store[model.User](uow2.Users()))
}

func TestCloseIsIdempotent(t *testing.T) {
	setup(t)
	uow := NewUnitOfWork(database.GetDB())

	assert.NoError(t, uow.Close())
	assert.NoError(t, uow.Close())

	assert.Panics(t, func() {
		Resolve[model.User](uow, true)
	})
}
