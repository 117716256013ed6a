package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
)

type IngredientHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type ingredientHandler struct {
	ingredientController controller.IngredientController
}

func NewIngredientHandler(ingredientController controller.IngredientController) IngredientHandler {
	return &ingredientHandler{
		ingredientController: ingredientController,
	}
}

// List handles fetching every ingredient
func (h *ingredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientController.ListIngredients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// Get handles fetching a specific ingredient by ID
func (h *ingredientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient with submitted ID not found"})
		return
	}

	ingredient, err := h.ingredientController.GetIngredient(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Create handles the creation of a new ingredient. A duplicate name is a
// store-level uniqueness violation and comes back as 400.
func (h *ingredientHandler) Create(c *gin.Context) {
	var ingredient entity.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ingredientController.CreateIngredient(c.Request.Context(), &ingredient); err != nil {
		respondStoreError(c, err, "Ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Update handles replacing the fields of an existing ingredient
func (h *ingredientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient with submitted ID not found"})
		return
	}

	if _, err := h.ingredientController.GetIngredient(c.Request.Context(), uint(id)); err != nil {
		respondStoreError(c, err, "Ingredient with submitted ID not found")
		return
	}

	var ingredient entity.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredient.ID = uint(id)

	if err := h.ingredientController.UpdateIngredient(c.Request.Context(), &ingredient); err != nil {
		respondStoreError(c, err, "Ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// Delete handles deleting an ingredient and echoes the deleted row
func (h *ingredientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient with submitted ID not found"})
		return
	}

	ingredient, err := h.ingredientController.DeleteIngredient(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Ingredient with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
