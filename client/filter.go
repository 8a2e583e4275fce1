package client

import (
	"strings"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Categories are the fixed filter tabs the menu offers. Dishes with any
// other category value only show up under "All".
var Categories = []string{CategoryAll, "Starters", "Main Course", "Desserts", "Beverages"}

// Filter projects the full dish list through a category selection and a
// free-text query. Category matching is case-sensitive and exact; the
// trimmed query is matched case-insensitively as a substring of the name
// or the description. Both conditions must hold, and the source order is
// preserved. Filter always works from the full list, so repeated calls
// with the same arguments give the same result.
func Filter(dishes []models.Dish, category, query string) []models.Dish {
	query = strings.ToLower(strings.TrimSpace(query))

	result := []models.Dish{}
	for _, dish := range dishes {
		if category != "" && category != CategoryAll && dish.Category != category {
			continue
		}
		if query != "" && !matchesQuery(dish, query) {
			continue
		}
		result = append(result, dish)
	}
	return result
}

func matchesQuery(dish models.Dish, loweredQuery string) bool {
	if dish.Name != nil && strings.Contains(strings.ToLower(*dish.Name), loweredQuery) {
		return true
	}
	return strings.Contains(strings.ToLower(dish.Description), loweredQuery)
}
