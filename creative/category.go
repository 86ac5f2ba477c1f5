package creative

import (
	"slices"
	"strings"
)

// DefaultCategory is used when no rule matches a brand name.
const DefaultCategory = "packaged-foods"

// categoryRules are tried in order; the first rule with a keyword contained
// in the lowercased brand name wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"restaurant-fast-food", []string{"restaurant", "cafe", "bistro", "grill", "burger", "pizza", "fast", "quick", "kitchen", "dine", "eat", "food"}},
	{"bakery-confectionery", []string{"bakery", "cake", "pastry", "confection", "sweet", "dessert", "chocolate", "candy", "cookie", "donut", "cupcake"}},
	{"organic-healthy-foods", []string{"organic", "natural", "health", "superfood", "wellness", "clean", "green", "pure", "wholesome", "nutrition"}},
	{"regional-traditional-foods", []string{"spice", "masala", "traditional", "heritage", "authentic", "regional", "ethnic", "cultural", "anveshan"}},
	{"packaged-foods", []string{"snack", "packaged", "frozen", "instant", "ready", "convenient", "meal", "brand", "foods", "grocery", "pantry"}},
	{"fitness", []string{"fit", "gym"}},
}

var foodCategories = []string{
	"restaurant-fast-food",
	"packaged-foods",
	"organic-healthy-foods",
	"bakery-confectionery",
	"regional-traditional-foods",
}

// InferCategory guesses a competitor category from a brand name by keyword
// containment. It is a heuristic: there is no confidence score, and names
// outside the vocabulary land in DefaultCategory. Note that "food" sits in
// the restaurant rule, so "Acme Foods" is a restaurant.
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return DefaultCategory
}

// IsFoodCategory reports whether category gets the food-specific prompt.
func IsFoodCategory(category string) bool {
	return slices.Contains(foodCategories, category)
}
