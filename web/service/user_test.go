package service

import (
	"path/filepath"
	"testing"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/util/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *repository.UnitOfWork {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		_ = database.CloseDB()
	})

	uow := repository.NewUnitOfWork(database.GetDB())
	t.Cleanup(func() {
		_ = uow.Close()
	})
	return uow
}

func strPtr(s string) *string { return &s }

func TestUserRegistrationAndPartialUpdate(t *testing.T) {
	uow := setup(t)

	roleService := NewRoleService(uow)
	role := &model.Role{Name: "Admin"}
	require.NoError(t, roleService.Create(role))
	require.NotZero(t, role.Id)

	userService := NewUserService(uow)
	user := &model.User{Login: "alice", Password: "secret", RoleId: &role.Id}
	require.NoError(t, userService.Create(user))
	require.NotEmpty(t, user.Id)

	// The stored password is a hash, never the raw value.
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, crypto.CheckPasswordHash(user.Password, "secret"))

	// Only the password is present in the query; the login stays as is.
	updated, err := userService.Patch(user, repository.UpdateUserQuery{Password: strPtr("newpass")})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Login)
	assert.True(t, crypto.CheckPasswordHash(updated.Password, "newpass"))

	assert.NotNil(t, userService.CheckUser("alice", "newpass"))
	assert.Nil(t, userService.CheckUser("alice", "secret"))
}

func TestFindByLogin(t *testing.T) {
	uow := setup(t)
	userService := NewUserService(uow)

	require.NoError(t, userService.Create(&model.User{Login: "alice", Password: "x"}))

	found := userService.FindByLogin("alice")
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Login)

	assert.Nil(t, userService.FindByLogin("nobody"))
}

func TestDuplicateLoginRejected(t *testing.T) {
	uow := setup(t)
	userService := NewUserService(uow)

	require.NoError(t, userService.Create(&model.User{Login: "alice", Password: "x"}))

	err := userService.Create(&model.User{Login: "alice", Password: "y"})
	assert.ErrorIs(t, err, repository.ErrConstraint)
}

func TestUserPatchCannotBlankLogin(t *testing.T) {
	uow := setup(t)
	userService := NewUserService(uow)

	user := &model.User{Login: "alice", Password: "x"}
	require.NoError(t, userService.Create(user))

	_, err := userService.Patch(user, repository.UpdateUserQuery{Login: strPtr("")})
	assert.Error(t, err)
	assert.Equal(t, "alice", user.Login)
}

func TestUserPatchCannotBlankPassword(t *testing.T) {
	uow := setup(t)
	userService := NewUserService(uow)

	user := &model.User{Login: "alice", Password: "secret"}
	require.NoError(t, userService.Create(user))

	_, err := userService.Patch(user, repository.UpdateUserQuery{Password: strPtr("")})
	assert.Error(t, err)

	// The stored hash still matches the old password.
	assert.True(t, crypto.CheckPasswordHash(user.Password, "secret"))
	assert.NotNil(t, userService.CheckUser("alice", "secret"))
}

func TestUserNumericLookupUnsupported(t *testing.T) {
	uow := setup(t)
	userService := NewUserService(uow)

	_, err := userService.GetByNumericID(1)
	assert.ErrorIs(t, err, repository.ErrNotImplemented)
}

func TestRoleNumericLookup(t *testing.T) {
	uow := setup(t)
	roleService := NewRoleService(uow)

	// Seeded at database init.
	role, err := roleService.GetByNumericID(1)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "Administrator", role.Name)

	missing, err := roleService.GetByNumericID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
