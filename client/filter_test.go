package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivaramgundoju/AR-MENU/models"
)

func dish(name, description, category string) models.Dish {
	price := 100.0
	return models.Dish{
		Name:        &name,
		Description: description,
		Price:       &price,
		Category:    category,
	}
}

func names(dishes []models.Dish) []string {
	out := make([]string, len(dishes))
	for i, d := range dishes {
		out[i] = *d.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	menu := []models.Dish{
		dish("Margherita Pizza", "Classic Italian pizza with fresh mozzarella and basil", "Main Course"),
		dish("Burger", "Juicy beef patty with melted cheese", "Main Course"),
		dish("Garlic Bread", "Toasted baguette with garlic butter", "Starters"),
		dish("Cold Coffee", "Chilled coffee blended with ice cream", "Beverages"),
		dish("Mystery Special", "Chef's secret", "Specials"),
	}

	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{
			name:     "all categories empty query keeps everything",
			category: "All",
			want:     []string{"Margherita Pizza", "Burger", "Garlic Bread", "Cold Coffee", "Mystery Special"},
		},
		{
			name:     "substring search on name",
			category: "All",
			query:    "piz",
			want:     []string{"Margherita Pizza"},
		},
		{
			name:     "search matches description too",
			category: "All",
			query:    "cheese",
			want:     []string{"Burger"},
		},
		{
			name:     "search is case-insensitive",
			category: "All",
			query:    "PIZZA",
			want:     []string{"Margherita Pizza"},
		},
		{
			name:     "query whitespace is trimmed",
			category: "All",
			query:    "  coffee  ",
			want:     []string{"Cold Coffee"},
		},
		{
			name:     "category match is exact and case-sensitive",
			category: "Starters",
			want:     []string{"Garlic Bread"},
		},
		{
			name:     "lowercased category matches nothing",
			category: "starters",
			want:     []string{},
		},
		{
			name:     "category and query compose as AND",
			category: "Main Course",
			query:    "pizza",
			want:     []string{"Margherita Pizza"},
		},
		{
			name:     "AND composition can be empty",
			category: "Beverages",
			query:    "pizza",
			want:     []string{},
		},
		{
			name:     "unknown category only shows under All",
			category: "All",
			query:    "mystery",
			want:     []string{"Mystery Special"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := Filter(menu, testCase.category, testCase.query)
			assert.Equal(t, testCase.want, names(got))
		})
	}
}

func TestFilterIsIdempotentAndNonDestructive(t *testing.T) {
	menu := []models.Dish{
		dish("Margherita Pizza", "", "Main Course"),
		dish("Burger", "", "Main Course"),
	}

	once := Filter(menu, "Main Course", "piz")
	twice := Filter(Filter(menu, "Main Course", "piz"), "Main Course", "piz")
	assert.Equal(t, names(once), names(twice))

	// The source list is untouched, so changing the filter starts over
	// from the full list rather than narrowing the previous result.
	require.Len(t, menu, 2)
	assert.Equal(t, []string{"Margherita Pizza", "Burger"}, names(Filter(menu, "All", "")))
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	menu := []models.Dish{
		dish("Bravo", "", "Main Course"),
		dish("Alpha", "", "Main Course"),
		dish("Charlie", "", "Main Course"),
	}

	got := Filter(menu, "Main Course", "")
	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, names(got))
}
