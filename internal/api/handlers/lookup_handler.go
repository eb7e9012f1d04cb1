package handlers

import (
	"RecipeSite/domain"
	"RecipeSite/internal/api/presenters"
	"RecipeSite/pkg/lookup"

	"github.com/gofiber/fiber/v2"
)

type (
	LookupHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetRegions(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
	}
)

func NewLookupHandler(lookupService lookup.LookupService) LookupHandler {
	return &lookupHandler{lookupService: lookupService}
}

func (h *lookupHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.lookupService.GetCategories(c.Context())
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *lookupHandler) GetRegions(c *fiber.Ctx) error {
	res, err := h.lookupService.GetRegions(c.Context())
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRegions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRegions)
}
