package recipe

import "RecipeSite/domain"

var cardBreakpoints = []struct {
	maxWidth int
	cards    int
}{
	{480, 2},
	{768, 4},
	{1024, 4},
	{1200, 6},
	{1400, 6},
}

// CardLimitForWidth picks how many suggestion cards fit a viewport of the
// given width in pixels. Non-positive widths get the default.
func CardLimitForWidth(width int) int {
	if width <= 0 {
		return domain.DefaultSimilarLimit
	}
	for _, bp := range cardBreakpoints {
		if width <= bp.maxWidth {
			return bp.cards
		}
	}
	return 8
}
