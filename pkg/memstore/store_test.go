package memstore

import (
	"RecipeSite/domain"
	"RecipeSite/entities"
	"RecipeSite/pkg/seed"
	"RecipeSite/pkg/user"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(t *testing.T, s *Store, email string) *entities.User {
	t.Helper()
	u := &entities.User{Username: email, Email: email, PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestUsers(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := newUser(t, s, "a@example.com")
	assert.Equal(t, uint(1), u.ID)

	err := s.CreateUser(ctx, &entities.User{Email: "A@example.com"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	got, err := s.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLookupsAreUniqueAndOrdered(t *testing.T) {
	s := New()
	first := s.AddCategory("Шөл")
	s.AddCategory("Амттан")
	again := s.AddCategory("Шөл")
	assert.Equal(t, first.ID, again.ID)

	categories, err := s.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Шөл", categories[0].Name)
	assert.Equal(t, "Амттан", categories[1].Name)
}

func TestRecipeReferencesAreChecked(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := newUser(t, s, "a@example.com")
	missing := uint(5)

	err := s.CreateRecipe(ctx, &entities.Recipe{UserID: u.ID, Title: "x", CategoryID: &missing})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	err = s.CreateRecipe(ctx, &entities.Recipe{UserID: 42, Title: "x"})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	r := &entities.Recipe{UserID: u.ID, Title: "x"}
	require.NoError(t, s.CreateRecipe(ctx, r))
	assert.Equal(t, entities.RecipeStatusPending, r.Status)

	assert.ErrorIs(t, s.SaveRecipe(ctx, u.ID, 99), gorm.ErrForeignKeyViolated)
	require.NoError(t, s.SaveRecipe(ctx, u.ID, r.ID))
	assert.ErrorIs(t, s.SaveRecipe(ctx, u.ID, r.ID), gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, s.RemoveSavedRecipe(ctx, u.ID, 99), gorm.ErrRecordNotFound)
}

func TestReturnedRecipesAreDetached(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := newUser(t, s, "a@example.com")
	c := s.AddCategory("Шөл")
	r := &entities.Recipe{UserID: u.ID, Title: "x", CategoryID: &c.ID}
	require.NoError(t, s.CreateRecipe(ctx, r))

	got, err := s.GetRecipeByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Шөл", got.Category.Name)
	require.NotNil(t, got.User)

	got.Title = "changed"
	*got.CategoryID = 99

	again, err := s.GetRecipeByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", again.Title)
	assert.Equal(t, c.ID, *again.CategoryID)
}

func TestConcurrentViewsAndRatings(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := newUser(t, s, "a@example.com")
	r := &entities.Recipe{UserID: u.ID, Title: "x", Rating: 3}
	require.NoError(t, s.CreateRecipe(ctx, r))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.IncrementViews(ctx, r.ID))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, s.ApplyRating(ctx, r.ID, 5))
		}()
	}
	wg.Wait()

	got, err := s.GetRecipeByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Views)
	assert.GreaterOrEqual(t, got.Rating, 3.0)
	assert.LessOrEqual(t, got.Rating, 5.0)
}

func TestLoadFixture(t *testing.T) {
	s := New()
	ctx := context.Background()
	fx, err := seed.LoadFixture("../seed/testdata/info.json", "../seed/testdata/recipes-details.json")
	require.NoError(t, err)
	owner := seed.Owner{Email: "Seed@Example.com", Password: "secret1"}

	result, err := s.LoadFixture(ctx, fx, owner)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Inserted: 5}, result)

	ownerUser, err := s.GetUserByEmail(ctx, "seed@example.com")
	require.NoError(t, err)
	assert.Equal(t, "seed", ownerUser.Username)
	assert.True(t, user.CheckPasswordHash("secret1", ownerUser.PasswordHash))

	recipes, err := s.ListRecipes(ctx, domain.RecipeFilter{Status: entities.RecipeStatusApproved, Category: "Үндсэн хоол"})
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.False(t, r.IsUserUploaded)
		assert.Equal(t, ownerUser.ID, r.UserID)
	}

	regions, err := s.GetRegions(ctx)
	require.NoError(t, err)
	assert.Len(t, regions, len(seed.DefaultRegions))

	again, err := s.LoadFixture(ctx, fx, owner)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Skipped: 5}, again)
}

func TestLoadFixtureRequiresOwner(t *testing.T) {
	_, err := New().LoadFixture(context.Background(), seed.Fixture{}, seed.Owner{Email: "a@example.com"})
	assert.Error(t, err)
}
