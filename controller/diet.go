package controller

import (
	"context"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/repository"
)

type DietController interface {
	ListDiets(ctx context.Context) ([]entity.Diet, error)
	GetDiet(ctx context.Context, id uint) (*entity.Diet, error)
	CreateDiet(ctx context.Context, diet *entity.Diet) error
	UpdateDiet(ctx context.Context, diet *entity.Diet) error
	DeleteDiet(ctx context.Context, id uint) (*entity.Diet, error)
}

// dietController struct
type dietController struct {
	dietRepository repository.DietRepository
}

// NewDietController creates and returns a new DietController
func NewDietController(dietRepository *repository.DietRepository) DietController {
	return &dietController{
		dietRepository: *dietRepository,
	}
}

// ListDiets retrieves every diet
func (c *dietController) ListDiets(ctx context.Context) ([]entity.Diet, error) {
	diets, err := c.dietRepository.ListDiets(ctx)
	if err != nil {
		return nil, err
	}
	return diets, nil
}

// GetDiet retrieves a single diet by ID
func (c *dietController) GetDiet(ctx context.Context, id uint) (*entity.Diet, error) {
	diet, err := c.dietRepository.GetDietByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return diet, nil
}

// CreateDiet adds a new diet
func (c *dietController) CreateDiet(ctx context.Context, diet *entity.Diet) error {
	err := c.dietRepository.CreateDiet(ctx, diet)
	if err != nil {
		return err
	}
	return nil
}

// UpdateDiet modifies an existing diet
func (c *dietController) UpdateDiet(ctx context.Context, diet *entity.Diet) error {
	err := c.dietRepository.UpdateDiet(ctx, diet)
	if err != nil {
		return err
	}
	return nil
}

// DeleteDiet removes a diet by ID and returns the deleted row
func (c *dietController) DeleteDiet(ctx context.Context, id uint) (*entity.Diet, error) {
	diet, err := c.dietRepository.DeleteDiet(ctx, id)
	return diet, err
}
