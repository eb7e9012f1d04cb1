package recipe

import (
	"RecipeSite/domain"
	"math"
)

// viewsPerRating is how many views are assumed to stand behind one vote.
// Individual votes are not stored, so the sample count is inferred from views.
const viewsPerRating = 10

// SampleWeight is the implied number of earlier votes for a recipe with the given views.
func SampleWeight(views int64) int64 {
	n := views / viewsPerRating
	if n < 1 {
		return 1
	}
	return n
}

// AggregateRating folds rating into the running average current.
func AggregateRating(current float64, views int64, rating float64) float64 {
	n := float64(SampleWeight(views))
	next := (current*n + rating) / (n + 1)
	return math.Min(domain.MaxRating, math.Max(0, next))
}

// RoundRating rounds to one decimal for display.
func RoundRating(r float64) float64 {
	return math.Round(r*10) / 10
}

func ValidRating(rating float64) bool {
	return !math.IsNaN(rating) && rating >= domain.MinRating && rating <= domain.MaxRating
}
