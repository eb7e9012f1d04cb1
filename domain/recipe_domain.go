package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	RecipeStatusAll = "all"

	MinRating = 1.0
	MaxRating = 5.0

	DefaultSimilarLimit = 4
	MaxListLimit        = 100
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessRateRecipe       = "recipe rated successfully"
	MessageSuccessSaveRecipe       = "recipe saved successfully"
	MessageSuccessUnsaveRecipe     = "recipe removed from saved recipes"
	MessageSuccessGetSavedRecipes  = "success get saved recipes"
	MessageSuccessGetSimilar       = "success get similar recipes"
	MessageSuccessUploadImage      = "image uploaded successfully"
	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedCreateRecipe      = "failed to create recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedRateRecipe        = "failed to rate recipe"
	MessageFailedSaveRecipe        = "failed to save recipe"
	MessageFailedUnsaveRecipe      = "failed to remove saved recipe"
	MessageFailedGetSavedRecipes   = "failed to get saved recipes"
	MessageFailedGetSimilarRecipes = "failed to get similar recipes"
	MessageFailedUploadImage       = "failed to upload image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrRecipeAlreadySaved       = errors.New("recipe is already saved")
	ErrSavedRecipeNotFound      = errors.New("recipe is not in saved recipes")
	ErrInvalidRating            = errors.New("rating must be between 1 and 5")
	ErrInvalidCategory          = errors.New("unknown category or region")
	ErrInvalidStatus            = errors.New("status must be one of pending, approved, rejected, all")
	ErrInvalidLimit             = errors.New("limit must be a positive integer")
	ErrInvalidImageFormat       = errors.New("invalid image format")
)

type (
	// RecipeFilter holds the optional listing parameters. Zero values mean "no filter".
	RecipeFilter struct {
		Status   string
		Category string
		Region   string
		Limit    int
	}

	RecipeRequest struct {
		Title        string `json:"title" validate:"required,max=255"`
		CategoryID   *uint  `json:"category_id" validate:"omitempty,min=1"`
		RegionID     *uint  `json:"region_id" validate:"omitempty,min=1"`
		CookTime     int    `json:"cook_time" validate:"min=0"`
		ServingsMin  int    `json:"servings_min" validate:"required,min=1"`
		ServingsMax  int    `json:"servings_max" validate:"required,gtefield=ServingsMin"`
		Calories     int    `json:"calories" validate:"min=0"`
		ImageURL     string `json:"image_url" validate:"omitempty,max=1024"`
		Ingredients  string `json:"ingredients" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
		ExtraInfo    string `json:"extra_info"`
	}

	RateRecipeRequest struct {
		Rating float64 `json:"rating" validate:"required,min=1,max=5"`
	}

	RateRecipeResponse struct {
		RecipeID uint    `json:"recipe_id"`
		Rating   float64 `json:"rating"`
		Views    int64   `json:"views"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadRecipeImageResponse struct {
		ImageURL string `json:"image_url"`
	}

	Recipe struct {
		ID           uint      `json:"id"`
		UserID       uint      `json:"user_id"`
		Username     string    `json:"username"`
		Title        string    `json:"title"`
		CategoryID   *uint     `json:"category_id"`
		CategoryName string    `json:"category_name,omitempty"`
		RegionID     *uint     `json:"region_id"`
		RegionName   string    `json:"region_name,omitempty"`
		CookTime     int       `json:"cook_time"`
		ServingsMin  int       `json:"servings_min"`
		ServingsMax  int       `json:"servings_max"`
		Calories     int       `json:"calories"`
		ImageURL     string    `json:"image_url"`
		Views        int64     `json:"views"`
		Rating       float64   `json:"rating"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		ExtraInfo    string    `json:"extra_info"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
