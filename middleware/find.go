package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/will4skill/diet-api/controller"
)

// FindMeal resolves the :mealId path parameter to a full meal and
// attaches it to the context. An unknown or malformed id is rejected with
// 400 "Invalid Meal" — the original API used 400 rather than 404 for a
// missing parent resource and callers depend on it.
func FindMeal(meals controller.MealController) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("mealId"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Meal"})
			return
		}

		meal, err := meals.GetMeal(c.Request.Context(), uint(id))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Meal"})
			return
		}

		c.Set(mealKey, meal)
		c.Next()
	}
}

// FindDiet resolves the dietId field of the JSON body to a full diet and
// attaches it to the context. ShouldBindBodyWith keeps the body buffered
// so the handler can bind it again. An unknown id is rejected with 400
// "Invalid Diet" (same missing-parent contract as FindMeal).
func FindDiet(diets controller.DietController) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			DietID uint `json:"dietId"`
		}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Diet"})
			return
		}

		diet, err := diets.GetDiet(c.Request.Context(), body.DietID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Diet"})
			return
		}

		c.Set(dietKey, diet)
		c.Next()
	}
}
