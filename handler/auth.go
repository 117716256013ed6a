package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/service"
)

// AuthHandler interface
type AuthHandler interface {
	Login(c *gin.Context)
}

// authHandler struct
type authHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates and returns a new AuthHandler
func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles user authentication and hands out a fresh identity token.
func (h *authHandler) Login(c *gin.Context) {
	var loginRequest entity.LoginRequest
	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), loginRequest.Email, loginRequest.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.Header("x-auth-token", token)
	c.Header("access-control-expose-headers", "x-auth-token")
	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}
