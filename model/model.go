package model

import (
	"time"
)

// Diet represents a macro-nutrient plan in the system.
type Diet struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Carbohydrates float64   `gorm:"not null" json:"carbohydrates"`
	Fat           float64   `gorm:"not null" json:"fat"`
	Protein       float64   `gorm:"not null" json:"protein"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Ingredient represents a food item with per-serving nutrition facts.
type Ingredient struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;unique;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	ServingSize   float64   `gorm:"not null" json:"serving_size"`
	Calories      float64   `gorm:"not null" json:"calories"`
	Carbohydrates float64   `gorm:"not null" json:"carbohydrates"`
	Fat           float64   `gorm:"not null" json:"fat"`
	Protein       float64   `gorm:"not null" json:"protein"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// User represents an application user.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:255;not null" json:"username"`
	Email          string    `gorm:"size:255;unique;not null" json:"email"`
	PasswordDigest []byte    `gorm:"not null" json:"-"` // Hide digest from JSON
	Calories       float64   `gorm:"not null" json:"calories"`
	Admin          bool      `gorm:"default:false" json:"admin"`
	DietID         *uint     `json:"diet_id"`
	Diet           *Diet     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Meal represents a meal owned by exactly one user.
// Deleting a meal cascades to its meal_ingredients rows.
type Meal struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	UserID          uint             `gorm:"not null" json:"user_id"`
	User            *User            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Description     string           `gorm:"type:text" json:"description"`
	MealIngredients []MealIngredient `gorm:"constraint:OnDelete:CASCADE" json:"meal_ingredients"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// MealIngredient joins a meal to an ingredient with a servings count.
// Its lifecycle is bound to the parent meal.
type MealIngredient struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	MealID       uint        `gorm:"not null" json:"meal_id"`
	IngredientID uint        `gorm:"not null" json:"ingredient_id"`
	Ingredient   *Ingredient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Servings     int         `gorm:"not null" json:"servings"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// Relationships

// User DietID is a nullable foreign key referencing Diet.ID.
// Meal UserID is a foreign key referencing User.ID.
// MealIngredient MealID is a foreign key referencing Meal.ID (ON DELETE CASCADE).
// MealIngredient IngredientID is a foreign key referencing Ingredient.ID.
