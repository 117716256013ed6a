package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/will4skill/diet-api/controller"
	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/middleware"
	"github.com/will4skill/diet-api/service"
	"github.com/will4skill/diet-api/util"
)

type UserHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	GetMe(c *gin.Context)
	UpdateMe(c *gin.Context)
	Delete(c *gin.Context)
}

type userHandler struct {
	userController controller.UserController
	tokens         service.TokenService
	bcryptCost     int
}

func NewUserHandler(userController controller.UserController, tokens service.TokenService, config *entity.Config) UserHandler {
	return &userHandler{
		userController: userController,
		tokens:         tokens,
		bcryptCost:     config.BcryptCost,
	}
}

// List handles fetching every user. Admin only; digests are never
// serialized.
func (h *userHandler) List(c *gin.Context) {
	users, err := h.userController.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles registration. FindDiet has already resolved the body's
// dietId, so the referenced diet is known to exist. The response excludes
// the password and carries a fresh identity token in the x-auth-token
// header, exposed for cross-origin clients.
func (h *userHandler) Create(c *gin.Context) {
	diet, ok := middleware.LoadedDiet(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Diet"})
		return
	}

	var user entity.User
	// FindDiet consumed the body with ShouldBindBodyWith, bind from the
	// same buffer.
	if err := c.ShouldBindBodyWith(&user, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	digest, err := util.HashPassword(user.Password, h.bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.DietID = &diet.ID
	user.Admin = false // registration never grants the admin role
	if err := h.userController.CreateUser(c.Request.Context(), &user, digest); err != nil {
		respondStoreError(c, err, "User ID not found")
		return
	}

	token, err := h.tokens.Generate(&entity.Identity{ID: user.ID, Admin: user.Admin})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("x-auth-token", token)
	c.Header("access-control-expose-headers", "x-auth-token")
	c.JSON(http.StatusOK, user)
}

// GetMe handles fetching the caller's own profile, resolved from the
// token identity rather than a path parameter.
func (h *userHandler) GetMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userController.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		// The id came from a valid token; a missing row means the account
		// is gone and the credential is no longer usable.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid User"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles self-service profile updates. FindDiet has resolved
// the new dietId from the body.
func (h *userHandler) UpdateMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	diet, ok := middleware.LoadedDiet(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Diet"})
		return
	}

	user, err := h.userController.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid User"})
		return
	}

	var body struct {
		Username string  `json:"username"`
		Email    string  `json:"email"`
		Calories float64 `json:"calories"`
	}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Username = body.Username
	user.Email = body.Email
	user.Calories = body.Calories
	user.DietID = &diet.ID

	if err := h.userController.UpdateUser(c.Request.Context(), user); err != nil {
		respondStoreError(c, err, "User ID not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles deleting a user by ID. Admin only; echoes the deleted
// user without digest or timestamps.
func (h *userHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User ID not found"})
		return
	}

	user, err := h.userController.DeleteUser(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "User ID not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
