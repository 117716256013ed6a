package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/model"
	"github.com/will4skill/diet-api/repository"
	"github.com/will4skill/diet-api/service"
	"github.com/will4skill/diet-api/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	engine *gin.Engine
	db     *gorm.DB
	config *entity.Config
	tokens service.TokenService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&model.Diet{},
		&model.Ingredient{},
		&model.User{},
		&model.Meal{},
		&model.MealIngredient{},
	))
	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	config := &entity.Config{
		JWTPrivateKey:     "test_private_key",
		BcryptCost:        bcrypt.MinCost,
		AuthMiddlewareOn:  true,
		AdminMiddlewareOn: true,
	}

	engine := gin.New()
	SetupRoutes(engine, config, gormDB)

	return &testAPI{
		engine: engine,
		db:     gormDB,
		config: config,
		tokens: service.NewTokenService(config),
	}
}

// seedUser inserts a user directly through the repository and returns it
// with a token for making requests on its behalf.
func (api *testAPI) seedUser(t *testing.T, username, email string, admin bool) (*entity.User, string) {
	t.Helper()

	digest, err := util.HashPassword("123456", api.config.BcryptCost)
	require.NoError(t, err)

	user := &entity.User{Username: username, Email: email, Calories: 2400, Admin: admin}
	require.NoError(t, repository.NewUserRepository(api.db).CreateUser(context.Background(), user, digest))

	token, err := api.tokens.Generate(&entity.Identity{ID: user.ID, Admin: admin})
	require.NoError(t, err)
	return user, token
}

func (api *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	return w
}

func TestAuthorizationMatrix(t *testing.T) {
	api := newTestAPI(t)
	_, userToken := api.seedUser(t, "bob", "bob@example.com", false)

	t.Run("public diet list needs nothing", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/diets", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/meals", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token is 400", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/meals", "garbage", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-admin on admin route is 403", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/diets", userToken,
			entity.Diet{Name: "Keto", Carbohydrates: 10, Fat: 65, Protein: 25})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("api root points at the docs", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "README")
	})
}

func TestMealOwnership(t *testing.T) {
	api := newTestAPI(t)
	_, bobToken := api.seedUser(t, "bob", "bob@example.com", false)
	_, tomToken := api.seedUser(t, "tom", "tom@example.com", false)
	_, adminToken := api.seedUser(t, "root", "root@example.com", true)

	w := api.do(http.MethodPost, "/api/meals", bobToken, gin.H{
		"name":        "Breakfast",
		"description": "Breakfast foods",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var meal entity.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))

	mealPath := fmt.Sprintf("/api/meals/%d", meal.ID)

	t.Run("owner reads own meal", func(t *testing.T) {
		w := api.do(http.MethodGet, mealPath, bobToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		w := api.do(http.MethodGet, mealPath, tomToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin may read any meal", func(t *testing.T) {
		w := api.do(http.MethodGet, mealPath, adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing meal is 404", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/meals/9999", bobToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list returns own meals only", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/meals", tomToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var meals []entity.Meal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
		assert.Empty(t, meals)
	})
}

func TestDietScenario(t *testing.T) {
	api := newTestAPI(t)
	_, adminToken := api.seedUser(t, "root", "root@example.com", true)

	// Create the Keto diet and read it back unchanged.
	w := api.do(http.MethodPost, "/api/diets", adminToken, gin.H{
		"name":          "Keto",
		"description":   "low carb",
		"carbohydrates": 10,
		"fat":           65,
		"protein":       25,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var diet entity.Diet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diet))
	require.NotZero(t, diet.ID)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/diets/%d", diet.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var loaded entity.Diet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, diet, loaded)

	// Register a user on that diet. The response must exclude the
	// password and carry a token in the exposed header.
	w = api.do(http.MethodPost, "/api/users", "", gin.H{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "123456",
		"calories": 2400,
		"dietId":   diet.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "123456")
	userToken := w.Header().Get("x-auth-token")
	require.NotEmpty(t, userToken)
	assert.Equal(t, "x-auth-token", w.Header().Get("access-control-expose-headers"))

	// Registration with a dangling diet is rejected up front.
	w = api.do(http.MethodPost, "/api/users", "", gin.H{
		"username": "eve",
		"email":    "eve@example.com",
		"password": "123456",
		"calories": 1800,
		"dietId":   9999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Diet")

	// A second registration with the same email hits the uniqueness
	// constraint.
	w = api.do(http.MethodPost, "/api/users", "", gin.H{
		"username": "bobby",
		"email":    "bob@example.com",
		"password": "123456",
		"calories": 2000,
		"dietId":   diet.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The fresh token works for self-service reads.
	w = api.do(http.MethodGet, "/api/users/me", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bob@example.com"`)
	assert.NotContains(t, w.Body.String(), "password")

	// Build a meal with one ingredient line.
	w = api.do(http.MethodPost, "/api/ingredients", adminToken, gin.H{
		"name":          "Medium Pear",
		"description":   "Fruit",
		"serving_size":  178.0,
		"calories":      101.0,
		"carbohydrates": 27.0,
		"fat":           0.2,
		"protein":       0.6,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var ingredient entity.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredient))

	w = api.do(http.MethodPost, "/api/meals", userToken, gin.H{
		"name":        "Breakfast",
		"description": "Breakfast foods",
		"meal_ingredients": []gin.H{
			{"ingredientId": ingredient.ID, "servings": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var meal entity.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))
	require.NotZero(t, meal.ID)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/meals/%d", meal.ID), userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var withLines entity.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withLines))
	require.Len(t, withLines.MealIngredients, 1)
	assert.Equal(t, 2, withLines.MealIngredients[0].Servings)

	// A meal referencing a non-existent ingredient is rejected whole:
	// no orphan meal survives the failed creation.
	w = api.do(http.MethodPost, "/api/meals", userToken, gin.H{
		"name": "Phantom",
		"meal_ingredients": []gin.H{
			{"ingredientId": 9999, "servings": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = api.do(http.MethodGet, "/api/meals", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var meals []entity.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	assert.Len(t, meals, 1)

	// Deleting the meal cascades to its ingredient lines.
	w = api.do(http.MethodDelete, fmt.Sprintf("/api/meals/%d", meal.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	lines, err := repository.NewMealIngredientRepository(api.db).
		ListMealIngredientsByMeal(context.Background(), meal.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMealIngredientRoutes(t *testing.T) {
	api := newTestAPI(t)
	bob, bobToken := api.seedUser(t, "bob", "bob@example.com", false)
	_, tomToken := api.seedUser(t, "tom", "tom@example.com", false)
	_, adminToken := api.seedUser(t, "root", "root@example.com", true)

	ctx := context.Background()
	ingredient := &entity.Ingredient{Name: "Oats", ServingSize: 40, Calories: 150}
	require.NoError(t, repository.NewIngredientRepository(api.db).CreateIngredient(ctx, ingredient))

	meal := &entity.Meal{UserID: bob.ID, Name: "Breakfast"}
	require.NoError(t, repository.NewMealRepository(api.db).CreateMealWithIngredients(ctx, meal))

	basePath := fmt.Sprintf("/api/meals/%d/meal-ingredients", meal.ID)

	w := api.do(http.MethodPost, basePath, bobToken, gin.H{
		"ingredientId": ingredient.ID,
		"servings":     3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var line entity.MealIngredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
	require.NotZero(t, line.ID)

	linePath := fmt.Sprintf("%s/%d", basePath, line.ID)

	t.Run("owner reads the line", func(t *testing.T) {
		w := api.do(http.MethodGet, linePath, bobToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		w := api.do(http.MethodGet, linePath, tomToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin may read", func(t *testing.T) {
		w := api.do(http.MethodGet, linePath, adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad meal id is 400", func(t *testing.T) {
		w := api.do(http.MethodGet, fmt.Sprintf("/api/meals/9999/meal-ingredients/%d", line.ID), bobToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Meal")
	})

	t.Run("bad line id is 404", func(t *testing.T) {
		w := api.do(http.MethodGet, basePath+"/9999", bobToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("dangling ingredient on create is 400", func(t *testing.T) {
		w := api.do(http.MethodPost, basePath, bobToken, gin.H{
			"ingredientId": 9999,
			"servings":     1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("owner updates the line", func(t *testing.T) {
		w := api.do(http.MethodPut, linePath, bobToken, gin.H{
			"ingredientId": ingredient.ID,
			"servings":     5,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"servings":5`)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		w := api.do(http.MethodDelete, linePath, tomToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner deletes and gets the row back", func(t *testing.T) {
		w := api.do(http.MethodDelete, linePath, bobToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"servings":5`)

		w = api.do(http.MethodGet, linePath, bobToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	api := newTestAPI(t)
	_, userToken := api.seedUser(t, "bob", "bob@example.com", false)
	admin, adminToken := api.seedUser(t, "root", "root@example.com", true)

	t.Run("user list is admin only", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/users", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = api.do(http.MethodGet, "/api/users", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("update self switches diet", func(t *testing.T) {
		diet := &entity.Diet{Name: "Keto", Description: "low carb", Carbohydrates: 10, Fat: 65, Protein: 25}
		require.NoError(t, repository.NewDietRepository(api.db).CreateDiet(context.Background(), diet))

		w := api.do(http.MethodPut, "/api/users/me", userToken, gin.H{
			"username": "bob",
			"email":    "bob@example.com",
			"calories": 1900,
			"dietId":   diet.ID,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"calories":1900`)
	})

	t.Run("delete user is admin only and echoes the row", func(t *testing.T) {
		doomed, _ := api.seedUser(t, "doomed", "doomed@example.com", false)

		w := api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", doomed.ID), userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", doomed.ID), adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"doomed"`)

		w = api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", doomed.ID), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("login hands out a working token", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/login", "", gin.H{
			"email":    "root@example.com",
			"password": "123456",
		})
		require.Equal(t, http.StatusOK, w.Code)
		token := w.Header().Get("x-auth-token")
		require.NotEmpty(t, token)

		identity, err := api.tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, identity.ID)
		assert.True(t, identity.Admin)

		w = api.do(http.MethodPost, "/api/login", "", gin.H{
			"email":    "root@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
