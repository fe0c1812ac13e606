package service

import (
	"fmt"

	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/logger"
	"blogtask/util/common"
	"blogtask/util/crypto"

	"github.com/google/uuid"
)

var _ Crud[model.User, repository.UpdateUserQuery] = (*UserService)(nil)

// UserService manages registration, lookup and partial updates of users.
// Passwords are stored as bcrypt hashes.
type UserService struct {
	uow *repository.UnitOfWork
}

func NewUserService(uow *repository.UnitOfWork) *UserService {
	return &UserService{uow: uow}
}

func (s *UserService) GetAll() ([]*model.User, error) {
	return s.uow.Users().GetAll(), nil
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	return s.uow.Users().GetByID(id), nil
}

func (s *UserService) GetByNumericID(id int) (*model.User, error) {
	return nil, repository.ErrNotImplemented
}

// FindByLogin returns the user with the given login, or nil. Used by the
// login flow and by duplicate-registration checks.
func (s *UserService) FindByLogin(login string) *model.User {
	return s.uow.Users().FindByLogin(login)
}

// CheckUser verifies a login/password pair and returns the matching user,
// or nil when either is wrong.
func (s *UserService) CheckUser(login string, password string) *model.User {
	user := s.uow.Users().FindByLogin(login)
	if user == nil {
		return nil
	}
	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// Create registers a new user. The raw password is replaced with its bcrypt
// hash before the entity is persisted.
func (s *UserService) Create(user *model.User) error {
	if user.Login == "" {
		return common.NewError("login can not be empty")
	}
	if existing := s.uow.Users().FindByLogin(user.Login); existing != nil {
		return fmt.Errorf("%w: login %q is already taken", repository.ErrConstraint, user.Login)
	}
	if user.Id == "" {
		user.Id = uuid.NewString()
	}
	hash, err := crypto.HashPasswordAsBcrypt(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.uow.Users().Create(user)
}

func (s *UserService) Update(user *model.User) error {
	return s.uow.Users().Update(user)
}

// Patch overwrites exactly the fields present in the query and persists the
// result. A new password is hashed before it replaces the stored hash.
func (s *UserService) Patch(user *model.User, query repository.UpdateUserQuery) (*model.User, error) {
	if query.Login != nil {
		if *query.Login == "" {
			return nil, common.NewError("login can not be blanked")
		}
		if *query.Login != user.Login {
			if existing := s.uow.Users().FindByLogin(*query.Login); existing != nil {
				return nil, fmt.Errorf("%w: login %q is already taken", repository.ErrConstraint, *query.Login)
			}
		}
	}
	if query.Password != nil {
		if *query.Password == "" {
			return nil, common.NewError("password can not be blanked")
		}
		hash, err := crypto.HashPasswordAsBcrypt(*query.Password)
		if err != nil {
			return nil, err
		}
		query.Password = &hash
	}
	query.Apply(user)
	if err := s.uow.Users().Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(user *model.User) error {
	logger.Infof("deleting user %s", user.Login)
	return s.uow.Users().Delete(user)
}
