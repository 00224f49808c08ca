package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/Konaisya/construction-company/internal/utils"
	"gorm.io/gorm"
)

type UserService struct {
	users *repository.Repository[entity.User]
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repository.New[entity.User](db)}
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	OrgName  *string `json:"org_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (s *UserService) GetAll(ctx context.Context, filter repository.Filter) ([]entity.User, error) {
	return s.users.FindAll(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id uint) (*entity.User, error) {
	user, err := s.users.FindOne(ctx, repository.Filter{"id": id})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput) (*entity.User, error) {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.OrgName != nil {
		changes["org_name"] = *in.OrgName
	}
	if in.Phone != nil {
		changes["phone"] = *in.Phone
	}
	if in.Email != nil {
		if !validEmail(*in.Email) {
			return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
		}
		changes["email"] = *in.Email
	}
	if in.Password != nil {
		if !validPassword(*in.Password) {
			return nil, fmt.Errorf("%w: password too weak", ErrValidation)
		}
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailed, err)
		}
		changes["password"] = hash
	}

	user, err := s.users.Update(ctx, id, changes)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
