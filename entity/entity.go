package entity

import (
	"encoding/json"
)

// Diet represents a named macro-nutrient plan that users can follow.
type Diet struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Protein       float64 `json:"protein"`
}

// Ingredient represents a food item with its per-serving nutrition facts.
type Ingredient struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	ServingSize   float64 `json:"serving_size"`
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Protein       float64 `json:"protein"`
}

// Meal represents a user-owned meal and its ingredient lines.
type Meal struct {
	ID              uint             `json:"id"`
	UserID          uint             `json:"userId"`
	Name            string           `json:"name" binding:"required"`
	Description     string           `json:"description"`
	MealIngredients []MealIngredient `json:"meal_ingredients"`
}

// MealIngredient is one line of a meal: an ingredient and how many
// servings of it the meal contains.
type MealIngredient struct {
	ID           uint `json:"id"`
	MealID       uint `json:"mealId"`
	IngredientID uint `json:"ingredientId"`
	Servings     int  `json:"servings"`
}

// User represents an application user.
type User struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Calories float64 `json:"calories"`
	Admin    bool    `json:"admin"`
	DietID   *uint   `json:"dietId"`
}

// Identity is the authenticated principal decoded from a token.
type Identity struct {
	ID    uint `json:"id"`
	Admin bool `json:"admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MarshalJSON implements the custom JSON serialization for User. The
// shadow field dominates the embedded one and, being empty with
// omitempty, drops the password key from the output entirely.
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User // Create an alias to avoid infinite recursion
	return json.Marshal(&struct {
		*Alias
		Password string `json:"password,omitempty"`
	}{
		Alias:    (*Alias)(&u),
		Password: "",
	})
}
