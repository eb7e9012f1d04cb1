package handlers

import (
	"RecipeSite/domain"
	"RecipeSite/internal/api/presenters"
	"RecipeSite/pkg/recipe"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipesByUser(c *fiber.Ctx) error
		GetSimilarRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
		RateRecipe(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// positiveQuery reads an optional positive integer query parameter; 0 means absent.
func positiveQuery(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, domain.ErrInvalidLimit
	}
	return n, nil
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	limit, err := positiveQuery(c, "limit")
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	filter := domain.RecipeFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Region:   c.Query("region"),
		Limit:    limit,
	}

	res, err := h.recipeService.ListRecipes(c.Context(), filter)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipesByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipesByUser(c.Context(), userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetSimilarRecipes(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetSimilarRecipes, err)
	}

	limit, err := positiveQuery(c, "limit")
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetSimilarRecipes, err)
	}
	if limit == 0 {
		limit = recipe.CardLimitForWidth(c.QueryInt("width", 0))
	}

	res, err := h.recipeService.GetSimilarRecipes(c.Context(), recipeID, limit)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetSimilarRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSimilar)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := currentUserID(c)
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := currentUserID(c)
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := currentUserID(c)
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadRecipeImageRequest{Image: file}
	res, err := h.recipeService.UploadRecipeImage(c.Context(), req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func (h *recipeHandler) RateRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedRateRecipe, err)
	}

	req := new(domain.RateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	res, err := h.recipeService.RateRecipe(c.Context(), recipeID, req.Rating)
	if err != nil {
		return errorResponse(c, domain.MessageFailedRateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := currentUserID(c)
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedSaveRecipe, err)
	}

	if err := h.recipeService.SaveRecipe(c.Context(), recipeID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := currentUserID(c)
	recipeID, err := paramID(c, "id")
	if err != nil {
		return errorResponse(c, domain.MessageFailedUnsaveRecipe, err)
	}

	if err := h.recipeService.UnsaveRecipe(c.Context(), recipeID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedUnsaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *recipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := currentUserID(c)

	res, err := h.recipeService.GetSavedRecipes(c.Context(), userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetSavedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSavedRecipes)
}
