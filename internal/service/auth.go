package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/Konaisya/construction-company/internal/utils"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validPassword requires at least 8 alphanumeric characters with at least
// one letter and one digit.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

type AuthService struct {
	users     *repository.Repository[entity.User]
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     repository.New[entity.User](db),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	OrgName  string `json:"org_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if !validEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !validPassword(in.Password) {
		return nil, fmt.Errorf("%w: password too weak", ErrValidation)
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	user := &entity.User{
		Name:     in.Name,
		OrgName:  in.OrgName,
		Phone:    in.Phone,
		Email:    in.Email,
		Role:     entity.RoleUser,
		Password: hash,
	}
	if err := s.users.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token carrying the user's
// id and role.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindOne(ctx, repository.Filter{"email": email})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrForbidden
	}
	if err != nil {
		return "", err
	}
	if !utils.CheckPassword(user.Password, password) {
		return "", ErrForbidden
	}
	return utils.GenerateJWT(s.jwtSecret, user, s.tokenTTL)
}
