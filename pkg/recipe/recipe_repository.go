package recipe

import (
	"RecipeSite/domain"
	"RecipeSite/entities"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Both implementations (this one and pkg/memstore) report missing rows with
// gorm.ErrRecordNotFound and unique violations with gorm.ErrDuplicatedKey.
type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		IncrementViews(ctx context.Context, id uint) error
		ApplyRating(ctx context.Context, id uint, rating float64) error
		GetSimilarRecipes(ctx context.Context, categoryID, excludeID uint, limit int) ([]*entities.Recipe, error)
		GetRecentRecipes(ctx context.Context, excludeID uint, limit int) ([]*entities.Recipe, error)
		SaveRecipe(ctx context.Context, userID, recipeID uint) error
		RemoveSavedRecipe(ctx context.Context, userID, recipeID uint) error
		GetSavedRecipes(ctx context.Context, userID uint) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

var editableColumns = []string{
	"title", "category_id", "region_id", "cook_time", "servings_min", "servings_max",
	"calories", "image_url", "ingredients", "instructions", "extra_info", "updated_at",
}

// ratingUpdateExpr folds a vote into the stored average in one statement,
// so concurrent votes cannot overwrite each other.
var ratingUpdateExpr = fmt.Sprintf(
	"LEAST(%[1]g, GREATEST(0, (rating * GREATEST(1, views / %[2]d) + ?) / (GREATEST(1, views / %[2]d) + 1)))",
	domain.MaxRating, viewsPerRating,
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Region")
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.withRelations(ctx).Where("recipes.id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.withRelations(ctx).Model(&entities.Recipe{})
	if filter.Status != "" && filter.Status != domain.RecipeStatusAll {
		query = query.Where("recipes.status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = recipes.category_id").
			Where("categories.name = ?", filter.Category)
	}
	if filter.Region != "" {
		query = query.
			Joins("JOIN regions ON regions.id = recipes.region_id").
			Where("regions.name = ?", filter.Region)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("recipes.id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.withRelations(ctx).
		Where("recipes.user_id = ?", userID).
		Order("recipes.id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	recipe.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{ID: recipe.ID}).
		Select(editableColumns).
		Omit(clause.Associations).
		Updates(recipe)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.SavedRecipe{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) ApplyRating(ctx context.Context, id uint, rating float64) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("rating", gorm.Expr(ratingUpdateExpr, rating))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) GetSimilarRecipes(ctx context.Context, categoryID, excludeID uint, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.withRelations(ctx).
		Where("recipes.category_id = ? AND recipes.id <> ? AND recipes.status = ?", categoryID, excludeID, entities.RecipeStatusApproved).
		Order("recipes.views DESC, recipes.id DESC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecentRecipes(ctx context.Context, excludeID uint, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.withRelations(ctx).
		Where("recipes.id <> ? AND recipes.status = ?", excludeID, entities.RecipeStatusApproved).
		Order("recipes.id DESC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, userID, recipeID uint) error {
	saved := entities.SavedRecipe{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&saved).Error
}

func (r *recipeRepository) RemoveSavedRecipe(ctx context.Context, userID, recipeID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.withRelations(ctx).
		Joins("JOIN saved_recipes ON saved_recipes.recipe_id = recipes.id").
		Where("saved_recipes.user_id = ?", userID).
		Order("saved_recipes.created_at DESC, saved_recipes.id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
