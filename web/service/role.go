package service

import (
	"blogtask/database/model"
	"blogtask/database/repository"
)

var _ Crud[model.Role, repository.UpdateRoleQuery] = (*RoleService)(nil)

// RoleService manages the small, mostly-static role reference set. Roles are
// the only entity addressable by a numeric id.
type RoleService struct {
	uow *repository.UnitOfWork
}

func NewRoleService(uow *repository.UnitOfWork) *RoleService {
	return &RoleService{uow: uow}
}

func (s *RoleService) GetAll() ([]*model.Role, error) {
	return s.uow.Roles().GetAll(), nil
}

func (s *RoleService) GetByID(id string) (*model.Role, error) {
	return s.uow.Roles().GetByID(id), nil
}

func (s *RoleService) GetByNumericID(id int) (*model.Role, error) {
	return s.uow.Roles().GetByNumericID(id), nil
}

func (s *RoleService) Create(role *model.Role) error {
	return s.uow.Roles().Create(role)
}

func (s *RoleService) Update(role *model.Role) error {
	return s.uow.Roles().Update(role)
}

func (s *RoleService) Patch(role *model.Role, query repository.UpdateRoleQuery) (*model.Role, error) {
	query.Apply(role)
	if err := s.uow.Roles().Update(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Delete(role *model.Role) error {
	return s.uow.Roles().Delete(role)
}
