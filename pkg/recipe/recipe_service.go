package recipe

import (
	"RecipeSite/domain"
	"RecipeSite/entities"
	"RecipeSite/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const imageFolder = "recipes"

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
		GetRecipeDetail(ctx context.Context, recipeID uint) (domain.RecipeDetail, error)
		GetRecipesByUser(ctx context.Context, userID uint) ([]domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID uint) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req domain.RecipeRequest, userID uint) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error
		RateRecipe(ctx context.Context, recipeID uint, rating float64) (domain.RateRecipeResponse, error)
		GetSimilarRecipes(ctx context.Context, recipeID uint, limit int) ([]domain.Recipe, error)
		SaveRecipe(ctx context.Context, recipeID uint, userID uint) error
		UnsaveRecipe(ctx context.Context, recipeID uint, userID uint) error
		GetSavedRecipes(ctx context.Context, userID uint) ([]domain.Recipe, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID uint) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

// NewRecipeService accepts a nil s3; image uploads then fail with domain.ErrStorageDisabled.
func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func normalizeFilter(filter domain.RecipeFilter) (domain.RecipeFilter, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	switch filter.Status {
	case "":
		filter.Status = entities.RecipeStatusApproved
	case entities.RecipeStatusPending, entities.RecipeStatusApproved, entities.RecipeStatusRejected, domain.RecipeStatusAll:
	default:
		return filter, domain.ErrInvalidStatus
	}

	if filter.Limit < 0 {
		return filter, domain.ErrInvalidLimit
	}
	if filter.Limit > domain.MaxListLimit {
		filter.Limit = domain.MaxListLimit
	}

	filter.Category = strings.TrimSpace(filter.Category)
	filter.Region = strings.TrimSpace(filter.Region)
	return filter, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.ListRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint) (domain.RecipeDetail, error) {
	if err := s.recipeRepository.IncrementViews(ctx, recipeID); err != nil {
		return domain.RecipeDetail{}, translate(err)
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, translate(err)
	}
	return toRecipeDetail(recipe), nil
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID uint) (domain.RecipeDetail, error) {
	recipe := &entities.Recipe{
		UserID:         userID,
		Status:         entities.RecipeStatusPending,
		IsUserUploaded: true,
	}
	applyRequest(recipe, req)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, translate(err)
	}

	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetail{}, translate(err)
	}
	return toRecipeDetail(created), nil
}

func (s *recipeService) ownedRecipe(ctx context.Context, recipeID uint, userID uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, translate(err)
	}
	if recipe.UserID != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID uint, req domain.RecipeRequest, userID uint) (domain.RecipeDetail, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	oldImage := recipe.ImageURL
	recipe.User, recipe.Category, recipe.Region = nil, nil, nil
	applyRequest(recipe, req)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, translate(err)
	}
	if oldImage != recipe.ImageURL {
		s.removeImage(ctx, oldImage)
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, translate(err)
	}
	return toRecipeDetail(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return translate(err)
	}
	s.removeImage(ctx, recipe.ImageURL)
	return nil
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID uint, rating float64) (domain.RateRecipeResponse, error) {
	if !ValidRating(rating) {
		return domain.RateRecipeResponse{}, domain.ErrInvalidRating
	}

	if err := s.recipeRepository.ApplyRating(ctx, recipeID, rating); err != nil {
		return domain.RateRecipeResponse{}, translate(err)
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RateRecipeResponse{}, translate(err)
	}
	return domain.RateRecipeResponse{
		RecipeID: recipe.ID,
		Rating:   RoundRating(recipe.Rating),
		Views:    recipe.Views,
	}, nil
}

func (s *recipeService) GetSimilarRecipes(ctx context.Context, recipeID uint, limit int) ([]domain.Recipe, error) {
	if limit <= 0 {
		limit = domain.DefaultSimilarLimit
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, translate(err)
	}

	var similar []*entities.Recipe
	if recipe.CategoryID != nil {
		similar, err = s.recipeRepository.GetSimilarRecipes(ctx, *recipe.CategoryID, recipe.ID, limit)
		if err != nil {
			return nil, err
		}
	}
	if len(similar) == 0 {
		similar, err = s.recipeRepository.GetRecentRecipes(ctx, recipe.ID, limit)
		if err != nil {
			return nil, err
		}
	}
	return toRecipes(similar), nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, recipeID uint, userID uint) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		return translate(err)
	}

	if err := s.recipeRepository.SaveRecipe(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRecipeAlreadySaved
		}
		return translate(err)
	}
	return nil
}

func (s *recipeService) UnsaveRecipe(ctx context.Context, recipeID uint, userID uint) error {
	if err := s.recipeRepository.RemoveSavedRecipe(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSavedRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetSavedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID uint) (domain.UploadRecipeImageResponse, error) {
	if _, err := storage.ValidateExtension(req.Image.Filename, storage.AllowImage...); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}
	if s.s3 == nil {
		return domain.UploadRecipeImageResponse{}, domain.ErrStorageDisabled
	}

	fileName := fmt.Sprintf("%d-%s", userID, uuid.NewString())
	objectKey, err := s.s3.UploadFile(ctx, fileName, req.Image, imageFolder, storage.AllowImage...)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}
	return domain.UploadRecipeImageResponse{ImageURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

// removeImage deletes an image we host; failures only leave an orphaned object.
func (s *recipeService) removeImage(ctx context.Context, imageURL string) {
	if s.s3 == nil || imageURL == "" {
		return
	}
	objectKey := s.s3.GetObjectKeyFromLink(imageURL)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Warnf("delete image %s: %v", objectKey, err)
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrRecipeNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrInvalidCategory
	default:
		return err
	}
}

func applyRequest(recipe *entities.Recipe, req domain.RecipeRequest) {
	recipe.Title = strings.TrimSpace(req.Title)
	recipe.CategoryID = req.CategoryID
	recipe.RegionID = req.RegionID
	recipe.CookTime = req.CookTime
	recipe.ServingsMin = req.ServingsMin
	recipe.ServingsMax = req.ServingsMax
	recipe.Calories = req.Calories
	recipe.ImageURL = strings.TrimSpace(req.ImageURL)
	recipe.Ingredients = req.Ingredients
	recipe.Instructions = req.Instructions
	recipe.ExtraInfo = req.ExtraInfo
}

func toRecipe(r *entities.Recipe) domain.Recipe {
	res := domain.Recipe{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		CategoryID:  r.CategoryID,
		RegionID:    r.RegionID,
		CookTime:    r.CookTime,
		ServingsMin: r.ServingsMin,
		ServingsMax: r.ServingsMax,
		Calories:    r.Calories,
		ImageURL:    r.ImageURL,
		Views:       r.Views,
		Rating:      RoundRating(r.Rating),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
	if r.User != nil {
		res.Username = r.User.Username
	}
	if r.Category != nil {
		res.CategoryName = r.Category.Name
	}
	if r.Region != nil {
		res.RegionName = r.Region.Name
	}
	return res
}

func toRecipes(recipes []*entities.Recipe) []domain.Recipe {
	result := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toRecipe(r))
	}
	return result
}

func toRecipeDetail(r *entities.Recipe) domain.RecipeDetail {
	return domain.RecipeDetail{
		Recipe:       toRecipe(r),
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ExtraInfo:    r.ExtraInfo,
		UpdatedAt:    r.UpdatedAt,
	}
}
