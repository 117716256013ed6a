package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/model"
)

// newTestDB opens a fresh in-memory sqlite database with foreign keys
// enforced, which the cascade and integrity tests depend on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&model.Diet{},
		&model.Ingredient{},
		&model.User{},
		&model.Meal{},
		&model.MealIngredient{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return gormDB
}

func seedUser(t *testing.T, gormDB *gorm.DB, username, email string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Email: email, Calories: 2000}
	err := NewUserRepository(gormDB).CreateUser(context.Background(), user, []byte("digest"))
	require.NoError(t, err)
	return user
}

func seedIngredient(t *testing.T, gormDB *gorm.DB, name string) *entity.Ingredient {
	t.Helper()
	ingredient := &entity.Ingredient{
		Name:        name,
		Description: "test ingredient",
		ServingSize: 100,
		Calories:    50,
	}
	err := NewIngredientRepository(gormDB).CreateIngredient(context.Background(), ingredient)
	require.NoError(t, err)
	return ingredient
}
