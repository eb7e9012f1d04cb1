// Package memstore keeps users, recipes, lookups and saved recipes in memory.
// It backs the "fixture" data source and satisfies the same repository
// interfaces as the gorm implementations, including their error values.
package memstore

import (
	"RecipeSite/domain"
	"RecipeSite/entities"
	"RecipeSite/pkg/recipe"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

type Store struct {
	mu         sync.RWMutex
	users      map[uint]*entities.User
	recipes    map[uint]*entities.Recipe
	categories map[uint]*entities.Category
	regions    map[uint]*entities.Region
	saved      []*entities.SavedRecipe

	nextUserID     uint
	nextRecipeID   uint
	nextSavedID    uint
	nextCategoryID uint
	nextRegionID   uint

	now func() time.Time
}

func New() *Store {
	return &Store{
		users:      map[uint]*entities.User{},
		recipes:    map[uint]*entities.Recipe{},
		categories: map[uint]*entities.Category{},
		regions:    map[uint]*entities.Region{},
		now:        time.Now,
	}
}

// AddCategory returns the category with name, creating it when missing.
func (s *Store) AddCategory(name string) entities.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			return *c
		}
	}
	s.nextCategoryID++
	c := &entities.Category{ID: s.nextCategoryID, Name: name}
	s.categories[c.ID] = c
	return *c
}

// AddRegion returns the region with name, creating it when missing.
func (s *Store) AddRegion(name string) entities.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.regions {
		if r.Name == name {
			return *r
		}
	}
	s.nextRegionID++
	r := &entities.Region{ID: s.nextRegionID, Name: name}
	s.regions[r.ID] = r
	return *r
}

// users

func (s *Store) CreateUser(_ context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextUserID++
	now := s.now()
	user.ID = s.nextUserID
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	s.users[stored.ID] = &stored
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// lookups

func (s *Store) GetCategories(_ context.Context) ([]*entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetRegions(_ context.Context) ([]*entities.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Region, 0, len(s.regions))
	for _, r := range s.regions {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// recipes

func (s *Store) checkReferences(r *entities.Recipe) error {
	if _, ok := s.users[r.UserID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if r.CategoryID != nil {
		if _, ok := s.categories[*r.CategoryID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	if r.RegionID != nil {
		if _, ok := s.regions[*r.RegionID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	return nil
}

// view returns a detached copy with its relations filled in, like a preloaded gorm row.
func (s *Store) view(r *entities.Recipe) *entities.Recipe {
	out := *r
	out.User, out.Category, out.Region = nil, nil, nil
	if u, ok := s.users[r.UserID]; ok {
		cp := *u
		out.User = &cp
	}
	if r.CategoryID != nil {
		id := *r.CategoryID
		out.CategoryID = &id
		if c, ok := s.categories[id]; ok {
			cp := *c
			out.Category = &cp
		}
	}
	if r.RegionID != nil {
		id := *r.RegionID
		out.RegionID = &id
		if reg, ok := s.regions[id]; ok {
			cp := *reg
			out.Region = &cp
		}
	}
	return &out
}

func (s *Store) collect(keep func(*entities.Recipe) bool) []*entities.Recipe {
	out := make([]*entities.Recipe, 0)
	for _, r := range s.recipes {
		if keep(r) {
			out = append(out, s.view(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func capped(recipes []*entities.Recipe, limit int) []*entities.Recipe {
	if limit > 0 && len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}

func (s *Store) CreateRecipe(_ context.Context, r *entities.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReferences(r); err != nil {
		return err
	}
	s.nextRecipeID++
	now := s.now()
	r.ID = s.nextRecipeID
	r.CreatedAt, r.UpdatedAt = now, now
	if r.Status == "" {
		r.Status = entities.RecipeStatusPending
	}
	stored := *r
	stored.User, stored.Category, stored.Region = nil, nil, nil
	s.recipes[stored.ID] = &stored
	return nil
}

func (s *Store) GetRecipeByID(_ context.Context, id uint) (*entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s.view(r), nil
}

func (s *Store) ListRecipes(_ context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.collect(func(r *entities.Recipe) bool {
		if filter.Status != "" && filter.Status != domain.RecipeStatusAll && r.Status != filter.Status {
			return false
		}
		if filter.Category != "" {
			if r.CategoryID == nil {
				return false
			}
			c, ok := s.categories[*r.CategoryID]
			if !ok || c.Name != filter.Category {
				return false
			}
		}
		if filter.Region != "" {
			if r.RegionID == nil {
				return false
			}
			reg, ok := s.regions[*r.RegionID]
			if !ok || reg.Name != filter.Region {
				return false
			}
		}
		return true
	})
	return capped(out, filter.Limit), nil
}

func (s *Store) GetRecipesByUser(_ context.Context, userID uint) ([]*entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(r *entities.Recipe) bool { return r.UserID == userID }), nil
}

func (s *Store) UpdateRecipe(_ context.Context, r *entities.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.recipes[r.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if err := s.checkReferences(r); err != nil {
		return err
	}
	stored.Title = r.Title
	stored.CategoryID = r.CategoryID
	stored.RegionID = r.RegionID
	stored.CookTime = r.CookTime
	stored.ServingsMin = r.ServingsMin
	stored.ServingsMax = r.ServingsMax
	stored.Calories = r.Calories
	stored.ImageURL = r.ImageURL
	stored.Ingredients = r.Ingredients
	stored.Instructions = r.Instructions
	stored.ExtraInfo = r.ExtraInfo
	stored.UpdatedAt = s.now()
	r.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *Store) DeleteRecipe(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.recipes, id)
	kept := s.saved[:0]
	for _, sr := range s.saved {
		if sr.RecipeID != id {
			kept = append(kept, sr)
		}
	}
	s.saved = kept
	return nil
}

func (s *Store) IncrementViews(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Views++
	return nil
}

func (s *Store) ApplyRating(_ context.Context, id uint, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Rating = recipe.AggregateRating(r.Rating, r.Views, rating)
	return nil
}

func (s *Store) GetSimilarRecipes(_ context.Context, categoryID, excludeID uint, limit int) ([]*entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.collect(func(r *entities.Recipe) bool {
		return r.CategoryID != nil && *r.CategoryID == categoryID &&
			r.ID != excludeID && r.Status == entities.RecipeStatusApproved
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	return capped(out, limit), nil
}

func (s *Store) GetRecentRecipes(_ context.Context, excludeID uint, limit int) ([]*entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.collect(func(r *entities.Recipe) bool {
		return r.ID != excludeID && r.Status == entities.RecipeStatusApproved
	})
	return capped(out, limit), nil
}

// saved recipes

func (s *Store) SaveRecipe(_ context.Context, userID, recipeID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[recipeID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := s.users[userID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	for _, sr := range s.saved {
		if sr.UserID == userID && sr.RecipeID == recipeID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextSavedID++
	s.saved = append(s.saved, &entities.SavedRecipe{
		ID:        s.nextSavedID,
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: s.now(),
	})
	return nil
}

func (s *Store) RemoveSavedRecipe(_ context.Context, userID, recipeID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sr := range s.saved {
		if sr.UserID == userID && sr.RecipeID == recipeID {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *Store) GetSavedRecipes(_ context.Context, userID uint) ([]*entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Recipe, 0)
	// newest save first; saved ids grow with time
	for i := len(s.saved) - 1; i >= 0; i-- {
		sr := s.saved[i]
		if sr.UserID != userID {
			continue
		}
		if r, ok := s.recipes[sr.RecipeID]; ok {
			out = append(out, s.view(r))
		}
	}
	return out, nil
}
