package repository

import (
	"strconv"

	"blogtask/database/model"

	"gorm.io/gorm"
)

// UsersRepository adds login lookup on top of the generic user repository.
type UsersRepository struct {
	*Repository[model.User]
}

func NewUsersRepository(db *gorm.DB) *UsersRepository {
	return &UsersRepository{newRepository[model.User](db)}
}

// FindByLogin returns the user with the given login, or nil. Logins are
// unique by index, so a linear scan of the working set is sufficient.
func (r *UsersRepository) FindByLogin(login string) *model.User {
	for _, u := range r.items {
		if u.Login == login {
			return u
		}
	}
	return nil
}

// ArticlesRepository adds tag eager-loading. The base repository leaves the
// Tags collection empty; callers that render articles go through LoadWithTags.
type ArticlesRepository struct {
	*Repository[model.Article]
}

func NewArticlesRepository(db *gorm.DB) *ArticlesRepository {
	return &ArticlesRepository{newRepository[model.Article](db)}
}

// LoadWithTags returns the article with its Tags collection resolved, or nil
// when the article does not exist.
func (r *ArticlesRepository) LoadWithTags(id string) (*model.Article, error) {
	article := r.GetByID(id)
	if article == nil {
		return nil, nil
	}
	if err := r.db.Model(article).Association("Tags").Find(&article.Tags); err != nil {
		return nil, err
	}
	return article, nil
}

// ReplaceTags swaps the article's tag set and flushes the association.
func (r *ArticlesRepository) ReplaceTags(article *model.Article, tags []model.Tag) error {
	if _, ok := r.items[article.Key()]; !ok {
		return ErrNotFound
	}
	if err := r.db.Model(article).Association("Tags").Replace(tags); err != nil {
		return wrapWriteErr(err)
	}
	article.Tags = tags
	return nil
}

// TagsRepository has no behavior beyond the generic repository.
type TagsRepository struct {
	*Repository[model.Tag]
}

func NewTagsRepository(db *gorm.DB) *TagsRepository {
	return &TagsRepository{newRepository[model.Tag](db)}
}

// CommentsRepository adds a by-article scan used when rendering an article page.
type CommentsRepository struct {
	*Repository[model.Comment]
}

func NewCommentsRepository(db *gorm.DB) *CommentsRepository {
	return &CommentsRepository{newRepository[model.Comment](db)}
}

// FindByArticle returns every comment attached to the given article.
func (r *CommentsRepository) FindByArticle(articleId string) []*model.Comment {
	var out []*model.Comment
	for _, c := range r.items {
		if c.ArticleId == articleId {
			out = append(out, c)
		}
	}
	return out
}

// RolesRepository adds numeric-id lookup, the only entity where the primary
// key is a database-assigned integer.
type RolesRepository struct {
	*Repository[model.Role]
}

func NewRolesRepository(db *gorm.DB) *RolesRepository {
	return &RolesRepository{newRepository[model.Role](db)}
}

// GetByNumericID returns the role with the given integer id, or nil.
func (r *RolesRepository) GetByNumericID(id int) *model.Role {
	return r.GetByID(strconv.Itoa(id))
}
