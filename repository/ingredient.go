package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/mapper"
	"github.com/will4skill/diet-api/model"
)

// IngredientRepository is a struct that holds the database connection.
type IngredientRepository struct {
	DB *gorm.DB
}

// NewIngredientRepository creates and returns a new IngredientRepository.
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{
		DB: db,
	}
}

// ListIngredients fetches every ingredient.
func (r *IngredientRepository) ListIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	var ingredientModels []model.Ingredient
	if err := r.DB.WithContext(ctx).Find(&ingredientModels).Error; err != nil {
		return nil, translate(err)
	}
	ingredients := make([]entity.Ingredient, 0, len(ingredientModels))
	for i := range ingredientModels {
		ingredients = append(ingredients, *mapper.IngredientModelToEntity(&ingredientModels[i]))
	}
	return ingredients, nil
}

// GetIngredientByID fetches an ingredient from the database by ID.
func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ingredientModel model.Ingredient
	if err := r.DB.WithContext(ctx).First(&ingredientModel, id).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.IngredientModelToEntity(&ingredientModel), nil
}

// CreateIngredient creates a new ingredient. Name uniqueness is enforced
// by the store and surfaces as ErrConstraint.
func (r *IngredientRepository) CreateIngredient(ctx context.Context, ingredientEntity *entity.Ingredient) error {
	ingredientModel := mapper.IngredientEntityToModel(ingredientEntity)
	if err := r.DB.WithContext(ctx).Create(ingredientModel).Error; err != nil {
		return translate(err)
	}
	ingredientEntity.ID = ingredientModel.ID
	return nil
}

// UpdateIngredient replaces the stored fields of an existing ingredient.
func (r *IngredientRepository) UpdateIngredient(ctx context.Context, ingredientEntity *entity.Ingredient) error {
	ingredientModel := mapper.IngredientEntityToModel(ingredientEntity)
	if err := r.DB.WithContext(ctx).Model(&model.Ingredient{}).Where("id = ?", ingredientModel.ID).Updates(ingredientModel).Error; err != nil {
		return translate(err)
	}
	return nil
}

// DeleteIngredient deletes an ingredient by ID and returns the deleted row.
func (r *IngredientRepository) DeleteIngredient(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ingredientModel model.Ingredient
	if err := r.DB.WithContext(ctx).First(&ingredientModel, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.DB.WithContext(ctx).Delete(&ingredientModel).Error; err != nil {
		return nil, translate(err)
	}
	return mapper.IngredientModelToEntity(&ingredientModel), nil
}
