package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/repository"
)

// respondStoreError maps repository errors onto the HTTP taxonomy:
// missing row → 404 with the route's message, constraint violation → 400
// with the store message passed through, anything else → 500.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, repository.ErrConstraint):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
