package model

import "strings"

// Category is one of the fixed spending categories a receipt is assigned to.
type Category string

const (
	// CategoryGroceries covers supermarkets and food staples.
	CategoryGroceries Category = "Groceries"
	// CategoryDining covers restaurants, cafes, and takeout.
	CategoryDining Category = "Dining"
	// CategoryShopping covers general retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryTransport covers fuel, rideshare, parking, and transit.
	CategoryTransport Category = "Transport"
	// CategoryEntertainment covers movies, streaming, and events.
	CategoryEntertainment Category = "Entertainment"
	// CategoryHealth covers pharmacies and medical expenses.
	CategoryHealth Category = "Health"
	// CategoryUtilities covers recurring household services.
	CategoryUtilities Category = "Utilities"
	// CategoryOther is the fallback when no rule matches.
	CategoryOther Category = "Other"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryDining,
		CategoryShopping,
		CategoryTransport,
		CategoryEntertainment,
		CategoryHealth,
		CategoryUtilities,
		CategoryOther,
	}
}

// categoryDisplay carries the stable presentation identifiers attached to
// each category. Rendering layers map these to actual assets.
type categoryDisplay struct {
	icon  string
	color string
}

var categoryDisplays = map[Category]categoryDisplay{
	CategoryGroceries:     {icon: "cart", color: "#4ECDC4"},
	CategoryDining:        {icon: "fork.knife", color: "#FF6B6B"},
	CategoryShopping:      {icon: "bag", color: "#FFE66D"},
	CategoryTransport:     {icon: "car", color: "#95E1D3"},
	CategoryEntertainment: {icon: "film", color: "#C44DFF"},
	CategoryHealth:        {icon: "cross.case", color: "#6BCB77"},
	CategoryUtilities:     {icon: "bolt", color: "#4D96FF"},
	CategoryOther:         {icon: "questionmark.circle", color: "#666666"},
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryDisplays[c]
	return ok
}

// Icon returns the stable icon identifier for the category.
func (c Category) Icon() string {
	return categoryDisplays[c].icon
}

// Color returns the stable display color for the category.
func (c Category) Color() string {
	return categoryDisplays[c].color
}

// ParseCategory resolves a user-supplied name to a Category, ignoring case.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}
