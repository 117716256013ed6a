package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/handler"
	"github.com/will4skill/diet-api/middleware"
	"github.com/will4skill/diet-api/repository"
	"github.com/will4skill/diet-api/service"
)

// SetupRoutes wires repositories, controllers, services, middleware and
// handlers onto the engine. The database handle and config are injected;
// nothing here reaches for globals.
func SetupRoutes(r *gin.Engine, config *entity.Config, gormDB *gorm.DB) {
	dietRepository := repository.NewDietRepository(gormDB)
	ingredientRepository := repository.NewIngredientRepository(gormDB)
	mealRepository := repository.NewMealRepository(gormDB)
	mealIngredientRepository := repository.NewMealIngredientRepository(gormDB)
	userRepository := repository.NewUserRepository(gormDB)

	dietController := controller.NewDietController(dietRepository)
	ingredientController := controller.NewIngredientController(ingredientRepository)
	mealController := controller.NewMealController(mealRepository)
	mealIngredientController := controller.NewMealIngredientController(mealIngredientRepository)
	userController := controller.NewUserController(userRepository)

	tokenService := service.NewTokenService(config)
	authService := service.NewAuthService(userController, tokenService)

	dietHandler := handler.NewDietHandler(dietController)
	ingredientHandler := handler.NewIngredientHandler(ingredientController)
	mealHandler := handler.NewMealHandler(mealController)
	mealIngredientHandler := handler.NewMealIngredientHandler(mealIngredientController)
	userHandler := handler.NewUserHandler(userController, tokenService, config)
	authHandler := handler.NewAuthHandler(authService)

	auth := middleware.Authenticate(tokenService, config)
	admin := middleware.RequireAdmin(config)
	findMeal := middleware.FindMeal(mealController)
	findDiet := middleware.FindDiet(dietController)

	api := r.Group("/api")

	api.GET("", func(c *gin.Context) {
		url := "https://github.com/will4skill/diet-api"
		c.String(http.StatusOK, "See README for API use instructions: %s", url)
	})

	api.POST("/login", authHandler.Login)

	diets := api.Group("/diets")
	{
		diets.GET("", dietHandler.List)
		diets.GET("/:id", auth, admin, dietHandler.Get)
		diets.POST("", auth, admin, dietHandler.Create)
		diets.PUT("/:id", auth, admin, dietHandler.Update)
		diets.DELETE("/:id", auth, admin, dietHandler.Delete)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", auth, ingredientHandler.List)
		ingredients.GET("/:id", auth, admin, ingredientHandler.Get)
		ingredients.POST("", auth, admin, ingredientHandler.Create)
		ingredients.PUT("/:id", auth, admin, ingredientHandler.Update)
		ingredients.DELETE("/:id", auth, admin, ingredientHandler.Delete)
	}

	// gin requires one name per path position, so the meal id parameter
	// is :mealId on the item routes as well as the nested ones.
	meals := api.Group("/meals")
	{
		meals.GET("", auth, mealHandler.List)
		meals.POST("", auth, mealHandler.Create)
		meals.GET("/:mealId", auth, mealHandler.Get)
		meals.PUT("/:mealId", auth, admin, mealHandler.Update)
		meals.DELETE("/:mealId", auth, admin, mealHandler.Delete)

		lines := meals.Group("/:mealId/meal-ingredients", auth, findMeal)
		{
			lines.GET("/:id", mealIngredientHandler.Get)
			lines.POST("", mealIngredientHandler.Create)
			lines.PUT("/:id", mealIngredientHandler.Update)
			lines.DELETE("/:id", mealIngredientHandler.Delete)
		}
	}

	users := api.Group("/users")
	{
		users.GET("", auth, admin, userHandler.List)
		users.POST("", findDiet, userHandler.Create)
		users.GET("/me", auth, userHandler.GetMe)
		users.PUT("/me", auth, findDiet, userHandler.UpdateMe)
		users.DELETE("/:id", auth, admin, userHandler.Delete)
	}
}
