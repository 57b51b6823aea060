package handlers

import (
	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/presenters"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/category"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
	}
)

func NewCategoryHandler(categoryService category.CategoryService) CategoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}
