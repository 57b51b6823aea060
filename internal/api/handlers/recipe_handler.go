package handlers

import (
	"errors"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/presenters"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/recipe"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		RecommendRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{recipeService: recipeService}
}

func (h *recipeHandler) RecommendRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("query")

	res, err := h.recipeService.RecommendRecipes(c.Context(), query, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommendRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedRecommendRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommendRecipes)
}
