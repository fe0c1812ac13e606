package service

import (
	"fmt"

	"blogtask/database/model"
	"blogtask/database/repository"

	"github.com/google/uuid"
)

var _ Crud[model.Comment, repository.UpdateCommentQuery] = (*CommentService)(nil)

// CommentService manages comments. Comments without a user id are anonymous.
type CommentService struct {
	uow *repository.UnitOfWork
}

func NewCommentService(uow *repository.UnitOfWork) *CommentService {
	return &CommentService{uow: uow}
}

func (s *CommentService) GetAll() ([]*model.Comment, error) {
	return s.uow.Comments().GetAll(), nil
}

func (s *CommentService) GetByID(id string) (*model.Comment, error) {
	return s.uow.Comments().GetByID(id), nil
}

func (s *CommentService) GetByNumericID(id int) (*model.Comment, error) {
	return nil, repository.ErrNotImplemented
}

// GetByArticle returns every comment attached to the given article.
func (s *CommentService) GetByArticle(articleId string) []*model.Comment {
	return s.uow.Comments().FindByArticle(articleId)
}

func (s *CommentService) Create(comment *model.Comment) error {
	if comment.ArticleId == "" {
		return fmt.Errorf("%w: comment requires an article", repository.ErrConstraint)
	}
	if comment.Id == "" {
		comment.Id = uuid.NewString()
	}
	return s.uow.Comments().Create(comment)
}

func (s *CommentService) Update(comment *model.Comment) error {
	return s.uow.Comments().Update(comment)
}

func (s *CommentService) Patch(comment *model.Comment, query repository.UpdateCommentQuery) (*model.Comment, error) {
	query.Apply(comment)
	if err := s.uow.Comments().Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(comment *model.Comment) error {
	return s.uow.Comments().Delete(comment)
}
