package service

import (
	"testing"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleFixture(t *testing.T, uow *repository.UnitOfWork) (*model.User, *model.Article, *model.Tag) {
	t.Helper()

	user := &model.User{Login: "author", Password: "x"}
	require.NoError(t, NewUserService(uow).Create(user))

	tag := &model.Tag{Name: "golang"}
	require.NoError(t, NewTagService(uow).Create(tag))

	articleService := NewArticleService(uow)
	article := &model.Article{Title: "On Generics", Text: "body", UserId: user.Id}
	require.NoError(t, articleService.Create(article))
	require.NoError(t, articleService.SetTags(article, []string{tag.Id}))

	return user, article, tag
}

func TestArticleServiceEagerLoadsTags(t *testing.T) {
	uow := setup(t)
	_, article, tag := newArticleFixture(t, uow)

	// A raw repository get leaves the tag collection unloaded; the service
	// always resolves it.
	fresh := repository.NewUnitOfWork(database.GetDB())
	defer fresh.Close()

	base := repository.Resolve[model.Article](fresh, false).GetByID(article.Id)
	require.NotNil(t, base)
	assert.Empty(t, base.Tags)

	loaded, err := NewArticleService(fresh).GetByID(article.Id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, tag.Id, loaded.Tags[0].Id)
}

func TestArticleServiceGetAllEagerLoadsTags(t *testing.T) {
	uow := setup(t)
	_, article, _ := newArticleFixture(t, uow)

	fresh := repository.NewUnitOfWork(database.GetDB())
	defer fresh.Close()

	articles, err := NewArticleService(fresh).GetAll()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, article.Id, articles[0].Id)
	assert.Len(t, articles[0].Tags, 1)
}

func TestArticlePartialUpdate(t *testing.T) {
	uow := setup(t)
	_, article, _ := newArticleFixture(t, uow)

	articleService := NewArticleService(uow)
	updated, err := articleService.Patch(article, repository.UpdateArticleQuery{Title: strPtr("X")})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, "body", updated.Text)

	// A pointer to the empty string deliberately blanks the field.
	updated, err = articleService.Patch(article, repository.UpdateArticleQuery{Text: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, "", updated.Text)
}

func TestArticleRequiresOwner(t *testing.T) {
	uow := setup(t)
	articleService := NewArticleService(uow)

	err := articleService.Create(&model.Article{Title: "orphan", Text: "x"})
	assert.ErrorIs(t, err, repository.ErrConstraint)
}

func TestArticleDeleteRemovesVisibility(t *testing.T) {
	uow := setup(t)
	_, article, _ := newArticleFixture(t, uow)

	articleService := NewArticleService(uow)
	require.NoError(t, articleService.Delete(article))

	got, err := articleService.GetByID(article.Id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArticleDeleteRemovesComments(t *testing.T) {
	uow := setup(t)
	_, article, _ := newArticleFixture(t, uow)

	commentService := NewCommentService(uow)
	require.NoError(t, commentService.Create(&model.Comment{Text: "drive-by", ArticleId: article.Id}))

	articleService := NewArticleService(uow)
	require.NoError(t, articleService.Delete(article))

	assert.Empty(t, commentService.GetByArticle(article.Id))

	got, err := articleService.GetByID(article.Id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCommentLifecycle(t *testing.T) {
	uow := setup(t)
	user, article, _ := newArticleFixture(t, uow)

	commentService := NewCommentService(uow)

	anon := &model.Comment{Text: "anonymous opinion", ArticleId: article.Id}
	require.NoError(t, commentService.Create(anon))
	assert.Nil(t, anon.UserId)

	signed := &model.Comment{Text: "signed opinion", UserId: &user.Id, ArticleId: article.Id}
	require.NoError(t, commentService.Create(signed))

	assert.Len(t, commentService.GetByArticle(article.Id), 2)

	updated, err := commentService.Patch(signed, repository.UpdateCommentQuery{Text: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	err = commentService.Create(&model.Comment{Text: "dangling"})
	assert.ErrorIs(t, err, repository.ErrConstraint)
}
