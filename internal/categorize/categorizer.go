// Package categorize maps parsed receipts to fixed spending categories
// using ordered keyword rules.
package categorize

import (
	"strings"

	"github.com/quillback/scanledger/internal/model"
)

// storeRule associates a keyword list with a category. Rules are evaluated
// in a fixed order; the first list containing a match wins, so the ordering
// must stay stable for reproducible output.
type storeRule struct {
	category model.Category
	keywords []string
}

var storeRules = []storeRule{
	{model.CategoryGroceries, []string{
		"grocery", "market", "supermarket", "trader joe", "whole foods",
		"safeway", "kroger", "aldi", "costco",
	}},
	{model.CategoryDining, []string{
		"restaurant", "cafe", "coffee", "starbucks", "pizza", "burger",
		"diner", "grill", "bakery", "deli", "mcdonald", "chipotle", "sushi",
	}},
	{model.CategoryTransport, []string{
		"gas", "fuel", "shell", "chevron", "exxon", "uber", "lyft",
		"parking", "transit", "metro",
	}},
	{model.CategoryEntertainment, []string{
		"cinema", "movie", "theater", "netflix", "spotify", "game",
		"arcade", "concert",
	}},
	{model.CategoryHealth, []string{
		"pharmacy", "cvs", "walgreens", "clinic", "doctor", "dental",
		"drug", "rite aid",
	}},
}

// groceryStaples trigger the item-content fallback when no store-name
// rule fires.
var groceryStaples = []string{"milk", "bread", "eggs"}

// Categorize maps a store name and item list to exactly one category.
// Store-name rules always take precedence over item-content rules; when
// neither fires the result is Other. It is pure and deterministic.
func Categorize(storeName string, items []model.LineItem) model.Category {
	name := strings.ToLower(storeName)
	for _, rule := range storeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}

	itemText := joinItemNames(items)
	for _, staple := range groceryStaples {
		if strings.Contains(itemText, staple) {
			return model.CategoryGroceries
		}
	}

	return model.CategoryOther
}

func joinItemNames(items []model.LineItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, strings.ToLower(item.Name))
	}
	return strings.Join(names, " ")
}
