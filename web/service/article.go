package service

import (
	"fmt"

	"blogtask/database/model"
	"blogtask/database/repository"

	"github.com/google/uuid"
)

var _ Crud[model.Article, repository.UpdateArticleQuery] = (*ArticleService)(nil)

// ArticleService manages articles. Every read through this service resolves
// the article's Tags collection, which the base repository leaves empty.
type ArticleService struct {
	uow *repository.UnitOfWork
}

func NewArticleService(uow *repository.UnitOfWork) *ArticleService {
	return &ArticleService{uow: uow}
}

func (s *ArticleService) GetAll() ([]*model.Article, error) {
	repo := s.uow.Articles()
	articles := repo.GetAll()
	for _, article := range articles {
		if _, err := repo.LoadWithTags(article.Id); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (s *ArticleService) GetByID(id string) (*model.Article, error) {
	return s.uow.Articles().LoadWithTags(id)
}

func (s *ArticleService) GetByNumericID(id int) (*model.Article, error) {
	return nil, repository.ErrNotImplemented
}

func (s *ArticleService) Create(article *model.Article) error {
	if article.UserId == "" {
		return fmt.Errorf("%w: article requires an owning user", repository.ErrConstraint)
	}
	if article.Id == "" {
		article.Id = uuid.NewString()
	}
	return s.uow.Articles().Create(article)
}

func (s *ArticleService) Update(article *model.Article) error {
	return s.uow.Articles().Update(article)
}

// Patch overwrites exactly the fields present in the query and persists the
// result.
func (s *ArticleService) Patch(article *model.Article, query repository.UpdateArticleQuery) (*model.Article, error) {
	query.Apply(article)
	if err := s.uow.Articles().Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// SetTags replaces the article's tag set with the tags identified by tagIds.
// Unknown tag ids are rejected.
func (s *ArticleService) SetTags(article *model.Article, tagIds []string) error {
	tagsRepo := s.uow.Tags()
	tags := make([]model.Tag, 0, len(tagIds))
	for _, id := range tagIds {
		tag := tagsRepo.GetByID(id)
		if tag == nil {
			return fmt.Errorf("%w: unknown tag %s", repository.ErrConstraint, id)
		}
		tags = append(tags, *tag)
	}
	return s.uow.Articles().ReplaceTags(article, tags)
}

// Delete removes the article together with its comments. Tag join rows are
// dropped by the association cascade.
func (s *ArticleService) Delete(article *model.Article) error {
	comments := s.uow.Comments()
	for _, comment := range comments.FindByArticle(article.Id) {
		if err := comments.Delete(comment); err != nil {
			return err
		}
	}
	return s.uow.Articles().Delete(article)
}
