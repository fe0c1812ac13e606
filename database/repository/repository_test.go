package repository

import (
	"path/filepath"
	"testing"

	"blogtask/database"
	"blogtask/database/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}

func TestCreateGetRoundTrip(t *testing.T) {
	setup(t)
	repo := NewTagsRepository(database.GetDB())

	tag := &model.Tag{Id: uuid.NewString(), Name: "golang"}
	require.NoError(t, repo.Create(tag))

	got := repo.GetByID(tag.Id)
	require.NotNil(t, got)
	assert.Equal(t, tag.Id, got.Id)
	assert.Equal(t, "golang", got.Name)

	// A fresh repository reloads the working set from the database.
	fresh := NewTagsRepository(database.GetDB())
	got = fresh.GetByID(tag.Id)
	require.NotNil(t, got)
	assert.Equal(t, "golang", got.Name)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	setup(t)
	repo := NewTagsRepository(database.GetDB())

	assert.Nil(t, repo.GetByID(uuid.NewString()))
}

func TestDeleteRemovesVisibility(t *testing.T) {
	setup(t)
	repo := NewTagsRepository(database.GetDB())

	tag := &model.Tag{Id: uuid.NewString(), Name: "temp"}
	require.NoError(t, repo.Create(tag))
	require.NoError(t, repo.Delete(tag))

	assert.Nil(t, repo.GetByID(tag.Id))

	fresh := NewTagsRepository(database.GetDB())
	assert.Nil(t, fresh.GetByID(tag.Id))
}

func TestCreateDuplicateKeyFails(t *testing.T) {
	setup(t)
	repo := NewTagsRepository(database.GetDB())

	tag := &model.Tag{Id: uuid.NewString(), Name: "dup"}
	require.NoError(t, repo.Create(tag))

	err := repo.Create(&model.Tag{Id: tag.Id, Name: "other"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestUpdateNonResidentFails(t *testing.T) {
	setup(t)
	repo := NewTagsRepository(database.GetDB())

	err := repo.Update(&model.Tag{Id: uuid.NewString(), Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(&model.Tag{Id: uuid.NewString()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePersistsMutationOfReturnedEntity(t *testing.T) {
	setup(t)
	repo := NewTagsRepository(database.GetDB())

	tag := &model.Tag{Id: uuid.NewString(), Name: "before"}
	require.NoError(t, repo.Create(tag))

	// Entities handed out are references into the working set.
	got := repo.GetByID(tag.Id)
	got.Name = "after"
	require.NoError(t, repo.Update(got))

	fresh := NewTagsRepository(database.GetDB())
	assert.Equal(t, "after", fresh.GetByID(tag.Id).Name)
}

func TestFindByLogin(t *testing.T) {
	setup(t)
	repo := NewUsersRepository(database.GetDB())

	user := &model.User{Id: uuid.NewString(), Login: "alice", Password: "x"}
	require.NoError(t, repo.Create(user))

	got := repo.FindByLogin("alice")
	require.NotNil(t, got)
	assert.Equal(t, user.Id, got.Id)

	assert.Nil(t, repo.FindByLogin("nobody"))
}

func TestCreateUserWithUnknownRoleFails(t *testing.T) {
	setup(t)
	repo := NewUsersRepository(database.GetDB())

	missing := 9999
	err := repo.Create(&model.User{Id: uuid.NewString(), Login: "bob", Password: "x", RoleId: &missing})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestDuplicateLoginRejectedByIndex(t *testing.T) {
	setup(t)
	repo := NewUsersRepository(database.GetDB())

	require.NoError(t, repo.Create(&model.User{Id: uuid.NewString(), Login: "carol", Password: "x"}))
	err := repo.Create(&model.User{Id: uuid.NewString(), Login: "carol", Password: "y"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestLoadWithTags(t *testing.T) {
	setup(t)
	db := database.GetDB()

	users := NewUsersRepository(db)
	owner := &model.User{Id: uuid.NewString(), Login: "author", Password: "x"}
	require.NoError(t, users.Create(owner))

	tags := NewTagsRepository(db)
	tag := &model.Tag{Id: uuid.NewString(), Name: "news"}
	require.NoError(t, tags.Create(tag))

	articles := NewArticlesRepository(db)
	article := &model.Article{Id: uuid.NewString(), Title: "t", Text: "x", UserId: owner.Id}
	require.NoError(t, articles.Create(article))
	require.NoError(t, articles.ReplaceTags(article, []model.Tag{*tag}))

	// The base get leaves the tag collection unloaded.
	fresh := NewArticlesRepository(db)
	base := fresh.GetByID(article.Id)
	require.NotNil(t, base)
	assert.Empty(t, base.Tags)

	loaded, err := fresh.LoadWithTags(article.Id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, "news", loaded.Tags[0].Name)

	missing, err := fresh.LoadWithTags(uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRolesNumericLookup(t *testing.T) {
	setup(t)
	repo := NewRolesRepository(database.GetDB())

	role := &model.Role{Name: "Editor", Description: "edits"}
	require.NoError(t, repo.Create(role))
	require.NotZero(t, role.Id)

	got := repo.GetByNumericID(role.Id)
	require.NotNil(t, got)
	assert.Equal(t, "Editor", got.Name)

	assert.Nil(t, repo.GetByNumericID(9999))
}

func TestCommentsFindByArticle(t *testing.T) {
	setup(t)
	db := database.GetDB()

	users := NewUsersRepository(db)
	owner := &model.User{Id: uuid.NewString(), Login: "author", Password: "x"}
	require.NoError(t, users.Create(owner))

	articles := NewArticlesRepository(db)
	article := &model.Article{Id: uuid.NewString(), Title: "t", Text: "x", UserId: owner.Id}
	require.NoError(t, articles.Create(article))

	comments := NewCommentsRepository(db)
	require.NoError(t, comments.Create(&model.Comment{Id: uuid.NewString(), Text: "first", ArticleId: article.Id}))
	require.NoError(t, comments.Create(&model.Comment{Id: uuid.NewString(), Text: "second", ArticleId: article.Id}))

	assert.Len(t, comments.FindByArticle(article.Id), 2)
	assert.Empty(t, comments.FindByArticle(uuid.NewString()))
}
