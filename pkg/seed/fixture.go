package seed

import (
	"RecipeSite/entities"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	missingIngredients  = "Орц материал нэмэгдээгүй"
	missingInstructions = "Хийх арга нэмэгдээгүй"
)

// DefaultRegions is the region table shipped with the site.
var DefaultRegions = []string{
	"Монгол хоол",
	"Япон хоол",
	"Солонгос хоол",
	"Итали хоол",
	"Франц хоол",
	"Хятад хоол",
	"Америк хоол",
	"Тайланд хоол",
	"Энэтхэг хоол",
	"Вьетнам хоол",
}

var regionAliases = map[string]string{
	"Европ хоол": "Франц хоол",
}

type (
	// Fixture is the static recipe catalog after parsing.
	Fixture struct {
		Categories []string
		Regions    []string
		Recipes    []FixtureRecipe
	}

	FixtureRecipe struct {
		Title        string
		Category     string
		Region       string
		CookTime     int
		ServingsMin  int
		ServingsMax  int
		Calories     int
		Views        int64
		Rating       float64
		ImageURL     string
		Ingredients  string
		Instructions string
		ExtraInfo    string
	}

	// flexString accepts both JSON strings and numbers.
	flexString string

	infoEntry struct {
		ID       flexString `json:"id"`
		Name     string     `json:"name"`
		Type     string     `json:"type"`
		Category string     `json:"category"`
		Rating   flexString `json:"rating"`
		View     flexString `json:"view"`
		Time     flexString `json:"time"`
		Portion  flexString `json:"portion"`
		Cal      flexString `json:"cal"`
		Image    string     `json:"image"`
	}

	detailsEntry struct {
		ID          flexString `json:"id"`
		Ingredients []string   `json:"ingredients"`
		Steps       []string   `json:"steps"`
		Extra       []string   `json:"extra"`
	}
)

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// RegionFor maps a catalog "type" to a region name; unknown types have no region.
func RegionFor(kind string) string {
	kind = strings.TrimSpace(kind)
	if alias, ok := regionAliases[kind]; ok {
		return alias
	}
	for _, r := range DefaultRegions {
		if r == kind {
			return r
		}
	}
	return ""
}

// LoadFixture reads the catalog listing and, when detailsPath is not empty, the
// per-recipe details keyed by the same id.
func LoadFixture(infoPath, detailsPath string) (Fixture, error) {
	var info []infoEntry
	if err := readJSON(infoPath, &info); err != nil {
		return Fixture{}, err
	}

	details := map[string]detailsEntry{}
	if detailsPath != "" {
		var list []detailsEntry
		if err := readJSON(detailsPath, &list); err != nil {
			return Fixture{}, err
		}
		for _, d := range list {
			details[string(d.ID)] = d
		}
	}

	return buildFixture(info, details), nil
}

func readJSON(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func buildFixture(info []infoEntry, details map[string]detailsEntry) Fixture {
	fx := Fixture{Regions: append([]string(nil), DefaultRegions...)}
	seenCategory := map[string]bool{}

	for _, e := range info {
		title := strings.TrimSpace(e.Name)
		if title == "" {
			continue
		}

		category := strings.TrimSpace(e.Category)
		if category != "" && !seenCategory[category] {
			seenCategory[category] = true
			fx.Categories = append(fx.Categories, category)
		}

		servingsMin, servingsMax := ParsePortions(string(e.Portion))
		rating, _ := strconv.ParseFloat(strings.TrimSpace(string(e.Rating)), 64)
		if rating < 0 || rating > 5 {
			rating = 0
		}

		r := FixtureRecipe{
			Title:        title,
			Category:     category,
			Region:       RegionFor(e.Type),
			CookTime:     leadingInt(string(e.Time)),
			ServingsMin:  servingsMin,
			ServingsMax:  servingsMax,
			Calories:     leadingInt(string(e.Cal)),
			Views:        ParseViews(string(e.View)),
			Rating:       rating,
			ImageURL:     e.Image,
			Ingredients:  missingIngredients,
			Instructions: missingInstructions,
		}
		if d, ok := details[string(e.ID)]; ok {
			if len(d.Ingredients) > 0 {
				r.Ingredients = strings.Join(d.Ingredients, "\n")
			}
			if len(d.Steps) > 0 {
				r.Instructions = strings.Join(d.Steps, "\n")
			}
			r.ExtraInfo = strings.Join(d.Extra, "\n")
		}
		fx.Recipes = append(fx.Recipes, r)
	}
	return fx
}

// Entity builds an approved, non user-uploaded recipe owned by userID.
func (r FixtureRecipe) Entity(userID uint, categoryID, regionID *uint) entities.Recipe {
	return entities.Recipe{
		UserID:         userID,
		Title:          r.Title,
		CategoryID:     categoryID,
		RegionID:       regionID,
		CookTime:       r.CookTime,
		ServingsMin:    r.ServingsMin,
		ServingsMax:    r.ServingsMax,
		Calories:       r.Calories,
		ImageURL:       r.ImageURL,
		Ingredients:    r.Ingredients,
		Instructions:   r.Instructions,
		ExtraInfo:      r.ExtraInfo,
		Views:          r.Views,
		Rating:         r.Rating,
		Status:         entities.RecipeStatusApproved,
		IsUserUploaded: false,
	}
}
