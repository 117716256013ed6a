package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/middleware"
)

type MealIngredientHandler interface {
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type mealIngredientHandler struct {
	mealIngredientController controller.MealIngredientController
}

func NewMealIngredientHandler(mealIngredientController controller.MealIngredientController) MealIngredientHandler {
	return &mealIngredientHandler{
		mealIngredientController: mealIngredientController,
	}
}

// ownsLoadedMeal reports whether the caller may touch the loaded meal's
// ingredient lines: the owner always, an admin for any meal.
func ownsLoadedMeal(c *gin.Context) bool {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return false
	}
	meal, ok := middleware.LoadedMeal(c)
	if !ok {
		return false
	}
	return identity.Admin || identity.ID == meal.UserID
}

// Get handles fetching one ingredient line of the loaded meal. The
// ownership check runs before the lookup, so a non-owner probing ids
// gets a 403 rather than a 404.
func (h *mealIngredientHandler) Get(c *gin.Context) {
	if !ownsLoadedMeal(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal ingredient with submitted ID not found"})
		return
	}

	line, err := h.mealIngredientController.GetMealIngredient(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Meal ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, line)
}

// Create handles inserting a new ingredient line under the loaded meal.
// A dangling ingredientId is a foreign-key violation and comes back 400.
func (h *mealIngredientHandler) Create(c *gin.Context) {
	meal, ok := middleware.LoadedMeal(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Meal"})
		return
	}

	var body struct {
		IngredientID uint `json:"ingredientId"`
		Servings     int  `json:"servings"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line := entity.MealIngredient{
		MealID:       meal.ID,
		IngredientID: body.IngredientID,
		Servings:     body.Servings,
	}
	if err := h.mealIngredientController.CreateMealIngredient(c.Request.Context(), &line); err != nil {
		respondStoreError(c, err, "Meal ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, line)
}

// Update handles replacing an existing ingredient line. Lookup runs
// first: a missing line is 404 even for a non-owner, then ownership.
func (h *mealIngredientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal ingredient with submitted ID not found"})
		return
	}

	if _, err := h.mealIngredientController.GetMealIngredient(c.Request.Context(), uint(id)); err != nil {
		respondStoreError(c, err, "Meal ingredient with submitted ID not found")
		return
	}

	if !ownsLoadedMeal(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	meal, _ := middleware.LoadedMeal(c)
	var body struct {
		IngredientID uint `json:"ingredientId"`
		Servings     int  `json:"servings"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line := entity.MealIngredient{
		ID:           uint(id),
		MealID:       meal.ID,
		IngredientID: body.IngredientID,
		Servings:     body.Servings,
	}
	if err := h.mealIngredientController.UpdateMealIngredient(c.Request.Context(), &line); err != nil {
		respondStoreError(c, err, "Meal ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, line)
}

// Delete handles removing one ingredient line and echoes the deleted row.
func (h *mealIngredientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal ingredient with submitted ID not found"})
		return
	}

	if _, err := h.mealIngredientController.GetMealIngredient(c.Request.Context(), uint(id)); err != nil {
		respondStoreError(c, err, "Meal ingredient with submitted ID not found")
		return
	}

	if !ownsLoadedMeal(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	line, err := h.mealIngredientController.DeleteMealIngredient(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Meal ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, line)
}
