package mapper

import (
	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/model"
)

// DietEntityToModel maps a Diet entity to the corresponding model.
func DietEntityToModel(entity *entity.Diet) *model.Diet {
	return &model.Diet{
		ID:            entity.ID,
		Name:          entity.Name,
		Description:   entity.Description,
		Carbohydrates: entity.Carbohydrates,
		Fat:           entity.Fat,
		Protein:       entity.Protein,
	}
}

// DietModelToEntity maps a Diet model to the corresponding entity.
func DietModelToEntity(model *model.Diet) *entity.Diet {
	return &entity.Diet{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		Carbohydrates: model.Carbohydrates,
		Fat:           model.Fat,
		Protein:       model.Protein,
	}
}

// IngredientEntityToModel maps an Ingredient entity to the corresponding model.
func IngredientEntityToModel(entity *entity.Ingredient) *model.Ingredient {
	return &model.Ingredient{
		ID:            entity.ID,
		Name:          entity.Name,
		Description:   entity.Description,
		ServingSize:   entity.ServingSize,
		Calories:      entity.Calories,
		Carbohydrates: entity.Carbohydrates,
		Fat:           entity.Fat,
		Protein:       entity.Protein,
	}
}

// IngredientModelToEntity maps an Ingredient model to the corresponding entity.
func IngredientModelToEntity(model *model.Ingredient) *entity.Ingredient {
	return &entity.Ingredient{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		ServingSize:   model.ServingSize,
		Calories:      model.Calories,
		Carbohydrates: model.Carbohydrates,
		Fat:           model.Fat,
		Protein:       model.Protein,
	}
}

// MealEntityToModel maps a Meal entity and its ingredient lines to the
// corresponding models.
func MealEntityToModel(entity *entity.Meal) *model.Meal {
	meal := &model.Meal{
		ID:          entity.ID,
		UserID:      entity.UserID,
		Name:        entity.Name,
		Description: entity.Description,
	}
	for _, mi := range entity.MealIngredients {
		meal.MealIngredients = append(meal.MealIngredients, model.MealIngredient{
			ID:           mi.ID,
			MealID:       mi.MealID,
			IngredientID: mi.IngredientID,
			Servings:     mi.Servings,
		})
	}
	return meal
}

// MealModelToEntity maps a Meal model and its ingredient lines to the
// corresponding entities.
func MealModelToEntity(model *model.Meal) *entity.Meal {
	meal := &entity.Meal{
		ID:              model.ID,
		UserID:          model.UserID,
		Name:            model.Name,
		Description:     model.Description,
		MealIngredients: []entity.MealIngredient{},
	}
	for _, mi := range model.MealIngredients {
		meal.MealIngredients = append(meal.MealIngredients, entity.MealIngredient{
			ID:           mi.ID,
			MealID:       mi.MealID,
			IngredientID: mi.IngredientID,
			Servings:     mi.Servings,
		})
	}
	return meal
}

// MealIngredientEntityToModel maps a MealIngredient entity to the corresponding model.
func MealIngredientEntityToModel(entity *entity.MealIngredient) *model.MealIngredient {
	return &model.MealIngredient{
		ID:           entity.ID,
		MealID:       entity.MealID,
		IngredientID: entity.IngredientID,
		Servings:     entity.Servings,
	}
}

// MealIngredientModelToEntity maps a MealIngredient model to the corresponding entity.
func MealIngredientModelToEntity(model *model.MealIngredient) *entity.MealIngredient {
	return &entity.MealIngredient{
		ID:           model.ID,
		MealID:       model.MealID,
		IngredientID: model.IngredientID,
		Servings:     model.Servings,
	}
}

// UserEntityToModel maps a User entity to the corresponding model.
// The password digest is set separately by the caller; the plain-text
// password never reaches the model layer.
func UserEntityToModel(entity *entity.User) *model.User {
	return &model.User{
		ID:       entity.ID,
		Username: entity.Username,
		Email:    entity.Email,
		Calories: entity.Calories,
		Admin:    entity.Admin,
		DietID:   entity.DietID,
	}
}

// UserModelToEntity maps a User model to the corresponding entity.
// The digest and timestamps are deliberately left out.
func UserModelToEntity(model *model.User) *entity.User {
	return &entity.User{
		ID:       model.ID,
		Username: model.Username,
		Email:    model.Email,
		Calories: model.Calories,
		Admin:    model.Admin,
		DietID:   model.DietID,
	}
}
