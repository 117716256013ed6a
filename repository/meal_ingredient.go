package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/mapper"
	"github.com/will4skill/diet-api/model"
)

// MealIngredientRepository is a struct that holds the database connection.
type MealIngredientRepository struct {
	DB *gorm.DB
}

// NewMealIngredientRepository creates and returns a new MealIngredientRepository.
func NewMealIngredientRepository(db *gorm.DB) *MealIngredientRepository {
	return &MealIngredientRepository{
		DB: db,
	}
}

// ListMealIngredientsByMeal fetches every ingredient line of a meal.
func (r *MealIngredientRepository) ListMealIngredientsByMeal(ctx context.Context, mealID uint) ([]entity.MealIngredient, error) {
	var lineModels []model.MealIngredient
	if err := r.DB.WithContext(ctx).Where("meal_id = ?", mealID).Find(&lineModels).Error; err != nil {
		return nil, translate(err)
	}
	lines := make([]entity.MealIngredient, 0, len(lineModels))
	for i := range lineModels {
		lines = append(lines, *mapper.MealIngredientModelToEntity(&lineModels[i]))
	}
	return lines, nil
}

// GetMealIngredientByID fetches one ingredient line by ID.
func (r *MealIngredientRepository) GetMealIngredientByID(ctx context.Context, id uint) (*entity.MealIngredient, error) {
	var lineModel model.MealIngredient
	if err := r.DB.WithContext(ctx).First(&lineModel, id).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.MealIngredientModelToEntity(&lineModel), nil
}

// CreateMealIngredient inserts a new ingredient line. Dangling meal or
// ingredient references are rejected by the store's foreign keys and
// surface as ErrConstraint.
func (r *MealIngredientRepository) CreateMealIngredient(ctx context.Context, lineEntity *entity.MealIngredient) error {
	lineModel := mapper.MealIngredientEntityToModel(lineEntity)
	if err := r.DB.WithContext(ctx).Create(lineModel).Error; err != nil {
		return translate(err)
	}
	lineEntity.ID = lineModel.ID
	return nil
}

// UpdateMealIngredient replaces the stored fields of an existing line.
func (r *MealIngredientRepository) UpdateMealIngredient(ctx context.Context, lineEntity *entity.MealIngredient) error {
	lineModel := mapper.MealIngredientEntityToModel(lineEntity)
	err := r.DB.WithContext(ctx).Model(&model.MealIngredient{}).Where("id = ?", lineModel.ID).Updates(lineModel).Error
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteMealIngredient deletes one ingredient line by ID and returns the
// deleted row.
func (r *MealIngredientRepository) DeleteMealIngredient(ctx context.Context, id uint) (*entity.MealIngredient, error) {
	var lineModel model.MealIngredient
	if err := r.DB.WithContext(ctx).First(&lineModel, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.DB.WithContext(ctx).Delete(&lineModel).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.MealIngredientModelToEntity(&lineModel), nil
}
