package controller

import (
	"context"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/repository"
)

type MealController interface {
	ListMealsByUser(ctx context.Context, userID uint) ([]entity.Meal, error)
	GetMeal(ctx context.Context, id uint) (*entity.Meal, error)
	CreateMeal(ctx context.Context, meal *entity.Meal) error
	UpdateMeal(ctx context.Context, meal *entity.Meal) error
	DeleteMeal(ctx context.Context, id uint) (*entity.Meal, error)
}

// mealController struct
type mealController struct {
	mealRepository repository.MealRepository
}

// NewMealController creates and returns a new MealController
func NewMealController(mealRepository *repository.MealRepository) MealController {
	return &mealController{
		mealRepository: *mealRepository,
	}
}

// ListMealsByUser retrieves every meal owned by the given user, with
// its ingredient lines
func (c *mealController) ListMealsByUser(ctx context.Context, userID uint) ([]entity.Meal, error) {
	meals, err := c.mealRepository.ListMealsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// GetMeal retrieves a single meal by ID, with its ingredient lines
func (c *mealController) GetMeal(ctx context.Context, id uint) (*entity.Meal, error) {
	meal, err := c.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// CreateMeal adds a new meal together with its ingredient lines, as one
// atomic operation
func (c *mealController) CreateMeal(ctx context.Context, meal *entity.Meal) error {
	err := c.mealRepository.CreateMealWithIngredients(ctx, meal)
	if err != nil {
		return err
	}
	return nil
}

// UpdateMeal modifies an existing meal
func (c *mealController) UpdateMeal(ctx context.Context, meal *entity.Meal) error {
	err := c.mealRepository.UpdateMeal(ctx, meal)
	if err != nil {
		return err
	}
	return nil
}

// DeleteMeal removes a meal by ID; the store cascades the delete to the
// meal's ingredient lines
func (c *mealController) DeleteMeal(ctx context.Context, id uint) (*entity.Meal, error) {
	meal, err := c.mealRepository.DeleteMeal(ctx, id)
	return meal, err
}
