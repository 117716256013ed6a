package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/middleware"
)

type MealHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type mealHandler struct {
	mealController controller.MealController
}

func NewMealHandler(mealController controller.MealController) MealHandler {
	return &mealHandler{
		mealController: mealController,
	}
}

// List handles fetching the caller's own meals, ingredient lines included.
func (h *mealHandler) List(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	meals, err := h.mealController.ListMealsByUser(c.Request.Context(), identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// Create handles the creation of a new meal owned by the caller. The meal
// row and its ingredient lines are written in one transaction, so a
// dangling ingredientId rejects the whole request and leaves no orphan
// meal behind.
func (h *mealHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var meal entity.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal.UserID = identity.ID

	if err := h.mealController.CreateMeal(c.Request.Context(), &meal); err != nil {
		respondStoreError(c, err, "Meal with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, meal)
}

// Get handles fetching a specific meal by ID with its ingredient lines.
// Only the owner or an admin may read it.
func (h *mealHandler) Get(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("mealId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal with submitted ID not found"})
		return
	}

	meal, err := h.mealController.GetMeal(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Meal with submitted ID not found")
		return
	}

	if !identity.Admin && identity.ID != meal.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// Update handles replacing the name and description of an existing meal.
// Admin-gated by the route; no ownership check here.
func (h *mealHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("mealId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal with submitted ID not found"})
		return
	}

	existing, err := h.mealController.GetMeal(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Meal with submitted ID not found")
		return
	}

	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = body.Name
	existing.Description = body.Description

	if err := h.mealController.UpdateMeal(c.Request.Context(), existing); err != nil {
		respondStoreError(c, err, "Meal with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, existing)
}

// Delete handles deleting a meal; the cascade removes its ingredient
// lines. Echoes the deleted meal.
func (h *mealHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("mealId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal ID not found"})
		return
	}

	meal, err := h.mealController.DeleteMeal(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Meal ID not found")
		return
	}
	c.JSON(http.StatusOK, meal)
}
