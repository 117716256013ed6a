package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/will4skill/diet-api/entity"
)

// Context keys used by the middleware chain. Handlers read the values
// back through the typed accessors below.
const (
	identityKey = "identity"
	mealKey     = "meal"
	dietKey     = "diet"
)

// CurrentIdentity returns the identity attached by Authenticate, if any.
func CurrentIdentity(c *gin.Context) (*entity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*entity.Identity)
	return identity, ok
}

// LoadedMeal returns the meal attached by FindMeal, if any.
func LoadedMeal(c *gin.Context) (*entity.Meal, bool) {
	v, ok := c.Get(mealKey)
	if !ok {
		return nil, false
	}
	meal, ok := v.(*entity.Meal)
	return meal, ok
}

// LoadedDiet returns the diet attached by FindDiet, if any.
func LoadedDiet(c *gin.Context) (*entity.Diet, bool) {
	v, ok := c.Get(dietKey)
	if !ok {
		return nil, false
	}
	diet, ok := v.(*entity.Diet)
	return diet, ok
}
