package controller

import (
	"context"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/repository"
)

type IngredientController interface {
	ListIngredients(ctx context.Context) ([]entity.Ingredient, error)
	GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error)
	CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error
	UpdateIngredient(ctx context.Context, ingredient *entity.Ingredient) error
	DeleteIngredient(ctx context.Context, id uint) (*entity.Ingredient, error)
}

type ingredientController struct {
	ingredientRepository repository.IngredientRepository
}

func NewIngredientController(ingredientRepository *repository.IngredientRepository) IngredientController {
	return &ingredientController{
		ingredientRepository: *ingredientRepository,
	}
}

func (c *ingredientController) ListIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	ingredients, err := c.ingredientRepository.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (c *ingredientController) GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error) {
	ingredient, err := c.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (c *ingredientController) CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error {
	err := c.ingredientRepository.CreateIngredient(ctx, ingredient)
	if err != nil {
		return err
	}
	return nil
}

func (c *ingredientController) UpdateIngredient(ctx context.Context, ingredient *entity.Ingredient) error {
	err := c.ingredientRepository.UpdateIngredient(ctx, ingredient)
	if err != nil {
		return err
	}
	return nil
}

func (c *ingredientController) DeleteIngredient(ctx context.Context, id uint) (*entity.Ingredient, error) {
	ingredient, err := c.ingredientRepository.DeleteIngredient(ctx, id)
	return ingredient, err
}
