package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/mapper"
	"github.com/will4skill/diet-api/model"
)

// UserRepository is a struct that holds the database connection.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// ListUsers fetches every user. Digests never leave the repository.
func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	var userModels []model.User
	if err := r.DB.WithContext(ctx).Find(&userModels).Error; err != nil {
		return nil, translate(err)
	}
	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *mapper.UserModelToEntity(&userModels[i]))
	}
	return users, nil
}

// CreateUser creates a new user with the given password digest.
func (r *UserRepository) CreateUser(ctx context.Context, userEntity *entity.User, passwordDigest []byte) error {
	userModel := mapper.UserEntityToModel(userEntity)
	userModel.PasswordDigest = passwordDigest
	if err := r.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		return translate(err)
	}
	userEntity.ID = userModel.ID
	userEntity.Admin = userModel.Admin
	return nil
}

// GetUserByID fetches a user from the database by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// GetUserByEmail fetches a user by email along with the stored digest,
// for credential checks.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, []byte, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, nil, translate(err)
	}
	return mapper.UserModelToEntity(&userModel), userModel.PasswordDigest, nil
}

// UpdateUser updates an existing user's profile fields. The digest and
// admin flag are not touched here.
func (r *UserRepository) UpdateUser(ctx context.Context, userEntity *entity.User) error {
	updates := map[string]interface{}{
		"username": userEntity.Username,
		"email":    userEntity.Email,
		"calories": userEntity.Calories,
		"diet_id":  userEntity.DietID,
	}
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userEntity.ID).Updates(updates).Error
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteUser deletes a user by ID and returns the deleted row.
func (r *UserRepository) DeleteUser(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.DB.WithContext(ctx).Delete(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.UserModelToEntity(&userModel), nil
}
