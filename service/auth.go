package service

import (
	"context"
	"errors"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/util"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService interface
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// authService struct
type authService struct {
	userController controller.UserController
	tokens         TokenService
}

// NewAuthService creates and returns a new AuthService
func NewAuthService(userController controller.UserController, tokens TokenService) AuthService {
	return &authService{
		userController: userController,
		tokens:         tokens,
	}
}

// Login handles user authentication
func (a *authService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, digest, err := a.userController.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !util.CheckPasswordHash(password, digest) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokens.Generate(&entity.Identity{ID: user.ID, Admin: user.Admin})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
