package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
)

type DietHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type dietHandler struct {
	dietController controller.DietController
}

func NewDietHandler(dietController controller.DietController) DietHandler {
	return &dietHandler{
		dietController: dietController,
	}
}

// List handles fetching every diet. This is the one public read.
func (h *dietHandler) List(c *gin.Context) {
	diets, err := h.dietController.ListDiets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, diets)
}

// Get handles fetching a specific diet by ID
func (h *dietHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Diet with submitted ID not found"})
		return
	}

	diet, err := h.dietController.GetDiet(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Diet with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, diet)
}

// Create handles the creation of a new diet
func (h *dietHandler) Create(c *gin.Context) {
	var diet entity.Diet
	if err := c.ShouldBindJSON(&diet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dietController.CreateDiet(c.Request.Context(), &diet); err != nil {
		respondStoreError(c, err, "Diet with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, diet)
}

// Update handles replacing the fields of an existing diet
func (h *dietHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Diet with submitted ID not found"})
		return
	}

	// Load first so a missing row is a 404, not a silent no-op update.
	if _, err := h.dietController.GetDiet(c.Request.Context(), uint(id)); err != nil {
		respondStoreError(c, err, "Diet with submitted ID not found")
		return
	}

	var diet entity.Diet
	if err := c.ShouldBindJSON(&diet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	diet.ID = uint(id)

	if err := h.dietController.UpdateDiet(c.Request.Context(), &diet); err != nil {
		respondStoreError(c, err, "Diet with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, diet)
}

// Delete handles deleting a diet and echoes the deleted row
func (h *dietHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Diet with submitted ID not found"})
		return
	}

	diet, err := h.dietController.DeleteDiet(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "Diet with submitted ID not found")
		return
	}
	c.JSON(http.StatusOK, diet)
}
