package service

import (
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/util/common"

	"github.com/google/uuid"
)

var _ Crud[model.Tag, repository.UpdateTagQuery] = (*TagService)(nil)

type TagService struct {
	uow *repository.UnitOfWork
}

func NewTagService(uow *repository.UnitOfWork) *TagService {
	return &TagService{uow: uow}
}

func (s *TagService) GetAll() ([]*model.Tag, error) {
	return s.uow.Tags().GetAll(), nil
}

func (s *TagService) GetByID(id string) (*model.Tag, error) {
	return s.uow.Tags().GetByID(id), nil
}

func (s *TagService) GetByNumericID(id int) (*model.Tag, error) {
	return nil, repository.ErrNotImplemented
}

func (s *TagService) Create(tag *model.Tag) error {
	if tag.Name == "" {
		return common.NewError("tag name can not be empty")
	}
	if tag.Id == "" {
		tag.Id = uuid.NewString()
	}
	return s.uow.Tags().Create(tag)
}

func (s *TagService) Update(tag *model.Tag) error {
	return s.uow.Tags().Update(tag)
}

func (s *TagService) Patch(tag *model.Tag, query repository.UpdateTagQuery) (*model.Tag, error) {
	query.Apply(tag)
	if err := s.uow.Tags().Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Delete(tag *model.Tag) error {
	return s.uow.Tags().Delete(tag)
}
