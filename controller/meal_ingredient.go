package controller

import (
	"context"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/repository"
)

type MealIngredientController interface {
	ListMealIngredients(ctx context.Context, mealID uint) ([]entity.MealIngredient, error)
	GetMealIngredient(ctx context.Context, id uint) (*entity.MealIngredient, error)
	CreateMealIngredient(ctx context.Context, line *entity.MealIngredient) error
	UpdateMealIngredient(ctx context.Context, line *entity.MealIngredient) error
	DeleteMealIngredient(ctx context.Context, id uint) (*entity.MealIngredient, error)
}

type mealIngredientController struct {
	mealIngredientRepository repository.MealIngredientRepository
}

func NewMealIngredientController(mealIngredientRepository *repository.MealIngredientRepository) MealIngredientController {
	return &mealIngredientController{
		mealIngredientRepository: *mealIngredientRepository,
	}
}

func (c *mealIngredientController) ListMealIngredients(ctx context.Context, mealID uint) ([]entity.MealIngredient, error) {
	lines, err := c.mealIngredientRepository.ListMealIngredientsByMeal(ctx, mealID)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *mealIngredientController) GetMealIngredient(ctx context.Context, id uint) (*entity.MealIngredient, error) {
	line, err := c.mealIngredientRepository.GetMealIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (c *mealIngredientController) CreateMealIngredient(ctx context.Context, line *entity.MealIngredient) error {
	err := c.mealIngredientRepository.CreateMealIngredient(ctx, line)
	if err != nil {
		return err
	}
	return nil
}

func (c *mealIngredientController) UpdateMealIngredient(ctx context.Context, line *entity.MealIngredient) error {
	err := c.mealIngredientRepository.UpdateMealIngredient(ctx, line)
	if err != nil {
		return err
	}
	return nil
}

func (c *mealIngredientController) DeleteMealIngredient(ctx context.Context, id uint) (*entity.MealIngredient, error) {
	line, err := c.mealIngredientRepository.DeleteMealIngredient(ctx, id)
	return line, err
}
