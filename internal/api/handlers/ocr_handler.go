package handlers

import (
	"errors"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/presenters"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/ocr"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OcrHandler interface {
		ExtractNames(c *fiber.Ctx) error
		ClassifyNames(c *fiber.Ctx) error
		SaveItems(c *fiber.Ctx) error
	}

	ocrHandler struct {
		ocrService ocr.OcrService
		validator  *validator.Validate
	}
)

func NewOcrHandler(ocrService ocr.OcrService, validator *validator.Validate) OcrHandler {
	return &ocrHandler{
		ocrService: ocrService,
		validator:  validator,
	}
}

func (h *ocrHandler) ExtractNames(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ExtractNamesRequest)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtractNames, err)
	}

	res, err := h.ocrService.ExtractNames(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtractNames, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExtractNames)
}

func (h *ocrHandler) ClassifyNames(c *fiber.Ctx) error {
	req := new(domain.ClassifyNamesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClassifyNames, err)
	}

	res, err := h.ocrService.ClassifyNames(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClassifyNames, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClassifyNames)
}

func (h *ocrHandler) SaveItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveItems, err)
	}

	res, err := h.ocrService.SaveItems(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		}
		if errors.Is(err, domain.ErrInvalidExpiryText) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedSaveItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveItems)
}
