package seed

import (
	"RecipeSite/entities"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	fx, err := LoadFixture("testdata/info.json", "testdata/recipes-details.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"Үндсэн хоол", "Шөл", "Амттан"}, fx.Categories)
	assert.Equal(t, DefaultRegions, fx.Regions)
	require.Len(t, fx.Recipes, 5)

	buuz := fx.Recipes[0]
	assert.Equal(t, "Бууз", buuz.Title)
	assert.Equal(t, "Монгол хоол", buuz.Region)
	assert.Equal(t, 60, buuz.CookTime)
	assert.Equal(t, 4, buuz.ServingsMin)
	assert.Equal(t, 6, buuz.ServingsMax)
	assert.Equal(t, 450, buuz.Calories)
	assert.Equal(t, int64(12000), buuz.Views)
	assert.Equal(t, 4.8, buuz.Rating)
	assert.Equal(t, "500г үхрийн мах\n2 ширхэг сонгино\n1кг гурил", buuz.Ingredients)
	assert.Equal(t, "Халуунаар нь идвэл амттай", buuz.ExtraInfo)

	tsuivan := fx.Recipes[1]
	assert.Equal(t, int64(8500), tsuivan.Views)
	assert.Equal(t, 520, tsuivan.Calories)
	assert.Equal(t, 4.5, tsuivan.Rating)
	assert.Empty(t, tsuivan.ExtraInfo)

	kimchi := fx.Recipes[2]
	assert.Equal(t, "Солонгос хоол", kimchi.Region)
	assert.Equal(t, 2, kimchi.ServingsMin)
	assert.Equal(t, 2, kimchi.ServingsMax)
	assert.Equal(t, missingIngredients, kimchi.Ingredients)
	assert.Equal(t, missingInstructions, kimchi.Instructions)

	brulee := fx.Recipes[4]
	assert.Equal(t, "Франц хоол", brulee.Region)
	assert.Equal(t, 2, brulee.ServingsMin)
	assert.Equal(t, 4, brulee.ServingsMax)
}

func TestLoadFixtureWithoutDetails(t *testing.T) {
	fx, err := LoadFixture("testdata/info.json", "")
	require.NoError(t, err)
	for _, r := range fx.Recipes {
		assert.Equal(t, missingIngredients, r.Ingredients)
		assert.Equal(t, missingInstructions, r.Instructions)
	}
}

func TestLoadFixtureErrors(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`[{"name": }]`), 0o644))
	_, err = LoadFixture(broken, "")
	assert.ErrorContains(t, err, "broken.json")
}

func TestLoadFixtureSkipsUntitledAndBadRatings(t *testing.T) {
	info := filepath.Join(t.TempDir(), "info.json")
	require.NoError(t, os.WriteFile(info, []byte(`[
		{"id": "a", "name": "  ", "category": "Шөл"},
		{"id": "b", "name": "Хуушуур", "rating": "9", "type": "Марс хоол", "view": null}
	]`), 0o644))

	fx, err := LoadFixture(info, "")
	require.NoError(t, err)
	require.Len(t, fx.Recipes, 1)
	assert.Empty(t, fx.Categories)
	assert.Equal(t, 0.0, fx.Recipes[0].Rating)
	assert.Empty(t, fx.Recipes[0].Region)
	assert.Equal(t, int64(0), fx.Recipes[0].Views)
}

func TestRegionFor(t *testing.T) {
	assert.Equal(t, "Япон хоол", RegionFor(" Япон хоол "))
	assert.Equal(t, "Франц хоол", RegionFor("Европ хоол"))
	assert.Empty(t, RegionFor("Марс хоол"))
}

func TestFixtureRecipeEntity(t *testing.T) {
	category, region := uint(3), uint(7)
	r := FixtureRecipe{Title: "Бууз", Views: 100, Rating: 4.5, ServingsMin: 2, ServingsMax: 4}

	e := r.Entity(9, &category, &region)
	assert.Equal(t, uint(9), e.UserID)
	assert.Equal(t, &category, e.CategoryID)
	assert.Equal(t, &region, e.RegionID)
	assert.Equal(t, entities.RecipeStatusApproved, e.Status)
	assert.False(t, e.IsUserUploaded)
	assert.Equal(t, int64(100), e.Views)
}
