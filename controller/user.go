package controller

import (
	"context"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/repository"
)

// UserController interface
type UserController interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, []byte, error)
	CreateUser(ctx context.Context, user *entity.User, passwordDigest []byte) error
	UpdateUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context, id uint) (*entity.User, error)
}

// userController struct
type userController struct {
	userRepository repository.UserRepository
}

// NewUserController creates and returns a new UserController
func NewUserController(userRepository *repository.UserRepository) UserController {
	return &userController{
		userRepository: *userRepository,
	}
}

// ListUsers retrieves every user, digests excluded
func (c *userController) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := c.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a single user by ID
func (c *userController) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := c.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by email, with the stored digest
// for credential checks
func (c *userController) GetUserByEmail(ctx context.Context, email string) (*entity.User, []byte, error) {
	return c.userRepository.GetUserByEmail(ctx, email)
}

// CreateUser adds a new user with an already-computed password digest
func (c *userController) CreateUser(ctx context.Context, user *entity.User, passwordDigest []byte) error {
	err := c.userRepository.CreateUser(ctx, user, passwordDigest)
	if err != nil {
		return err
	}
	return nil
}

// UpdateUser modifies an existing user's profile fields
func (c *userController) UpdateUser(ctx context.Context, user *entity.User) error {
	err := c.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return err
	}
	return nil
}

// DeleteUser removes a user by ID and returns the deleted row
func (c *userController) DeleteUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := c.userRepository.DeleteUser(ctx, id)
	return user, err
}
