package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/mapper"
	"github.com/will4skill/diet-api/model"
)

// MealRepository is a struct that holds the database connection.
type MealRepository struct {
	DB *gorm.DB
}

// NewMealRepository creates and returns a new MealRepository.
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{
		DB: db,
	}
}

// ListMealsByUser fetches every meal owned by the given user, with its
// meal_ingredients lines included.
func (r *MealRepository) ListMealsByUser(ctx context.Context, userID uint) ([]entity.Meal, error) {
	var mealModels []model.Meal
	err := r.DB.WithContext(ctx).
		Preload("MealIngredients").
		Where("user_id = ?", userID).
		Find(&mealModels).Error
	if err != nil {
		return nil, translate(err)
	}
	meals := make([]entity.Meal, 0, len(mealModels))
	for i := range mealModels {
		meals = append(meals, *mapper.MealModelToEntity(&mealModels[i]))
	}
	return meals, nil
}

// GetMealByID fetches a meal and its meal_ingredients lines by ID.
func (r *MealRepository) GetMealByID(ctx context.Context, id uint) (*entity.Meal, error) {
	var mealModel model.Meal
	err := r.DB.WithContext(ctx).
		Preload("MealIngredients").
		First(&mealModel, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return mapper.MealModelToEntity(&mealModel), nil
}

// CreateMealWithIngredients creates the meal row and all of its
// meal_ingredient children inside one transaction. If any child insert
// fails (for instance a dangling ingredientId), the whole creation rolls
// back and no orphan meal is left behind.
func (r *MealRepository) CreateMealWithIngredients(ctx context.Context, mealEntity *entity.Meal) error {
	mealModel := &model.Meal{
		UserID:      mealEntity.UserID,
		Name:        mealEntity.Name,
		Description: mealEntity.Description,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mealModel).Error; err != nil {
			return err
		}
		for i := range mealEntity.MealIngredients {
			child := model.MealIngredient{
				MealID:       mealModel.ID,
				IngredientID: mealEntity.MealIngredients[i].IngredientID,
				Servings:     mealEntity.MealIngredients[i].Servings,
			}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
			mealModel.MealIngredients = append(mealModel.MealIngredients, child)
		}
		return nil
	})
	if err != nil {
		return translate(err)
	}

	*mealEntity = *mapper.MealModelToEntity(mealModel)
	return nil
}

// UpdateMeal replaces the name and description of an existing meal.
func (r *MealRepository) UpdateMeal(ctx context.Context, mealEntity *entity.Meal) error {
	updates := model.Meal{
		Name:        mealEntity.Name,
		Description: mealEntity.Description,
	}
	err := r.DB.WithContext(ctx).Model(&model.Meal{}).Where("id = ?", mealEntity.ID).Updates(updates).Error
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteMeal deletes a meal by ID and returns the deleted row. The
// store's ON DELETE CASCADE rule removes the dependent meal_ingredients
// rows as part of the same operation.
func (r *MealRepository) DeleteMeal(ctx context.Context, id uint) (*entity.Meal, error) {
	var mealModel model.Meal
	err := r.DB.WithContext(ctx).
		Preload("MealIngredients").
		First(&mealModel, id).Error
	if err != nil {
		return nil, translate(err)
	}
	if err := r.DB.WithContext(ctx).Delete(&model.Meal{}, id).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.MealModelToEntity(&mealModel), nil
}
