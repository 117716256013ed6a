package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/mapper"
	"github.com/will4skill/diet-api/model"
)

// DietRepository is a struct that holds the database connection.
type DietRepository struct {
	DB *gorm.DB
}

// NewDietRepository creates and returns a new DietRepository.
func NewDietRepository(db *gorm.DB) *DietRepository {
	return &DietRepository{
		DB: db,
	}
}

// ListDiets fetches every diet.
func (r *DietRepository) ListDiets(ctx context.Context) ([]entity.Diet, error) {
	var dietModels []model.Diet
	if err := r.DB.WithContext(ctx).Find(&dietModels).Error; err != nil {
		return nil, translate(err)
	}
	diets := make([]entity.Diet, 0, len(dietModels))
	for i := range dietModels {
		diets = append(diets, *mapper.DietModelToEntity(&dietModels[i]))
	}
	return diets, nil
}

// GetDietByID fetches a diet from the database by ID.
func (r *DietRepository) GetDietByID(ctx context.Context, id uint) (*entity.Diet, error) {
	var dietModel model.Diet
	if err := r.DB.WithContext(ctx).First(&dietModel, id).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.DietModelToEntity(&dietModel), nil
}

// CreateDiet creates a new diet and fills in the generated ID.
func (r *DietRepository) CreateDiet(ctx context.Context, dietEntity *entity.Diet) error {
	dietModel := mapper.DietEntityToModel(dietEntity)
	if err := r.DB.WithContext(ctx).Create(dietModel).Error; err != nil {
		return translate(err)
	}
	dietEntity.ID = dietModel.ID
	return nil
}

// UpdateDiet replaces the stored fields of an existing diet.
func (r *DietRepository) UpdateDiet(ctx context.Context, dietEntity *entity.Diet) error {
	dietModel := mapper.DietEntityToModel(dietEntity)
	if err := r.DB.WithContext(ctx).Model(&model.Diet{}).Where("id = ?", dietModel.ID).Updates(dietModel).Error; err != nil {
		return translate(err)
	}
	return nil
}

// DeleteDiet deletes a diet by ID and returns the deleted row.
func (r *DietRepository) DeleteDiet(ctx context.Context, id uint) (*entity.Diet, error) {
	var dietModel model.Diet
	if err := r.DB.WithContext(ctx).First(&dietModel, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.DB.WithContext(ctx).Delete(&dietModel).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.DietModelToEntity(&dietModel), nil
}
