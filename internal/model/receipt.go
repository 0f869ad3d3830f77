// Package model defines the core domain types shared across the application.
package model

import "time"

// LineItem is a single purchased item extracted from a receipt.
type LineItem struct {
	Name     string
	Price    float64
	Quantity int
}

// ParsedReceipt is the normalized result of one scan attempt, whether it
// came from raw OCR text or from an external structured extractor.
type ParsedReceipt struct {
	Date      time.Time
	StoreName string
	Items     []LineItem
	Total     float64
}

// Receipt is the persisted form of a parsed receipt. The core packages
// treat it as a read-only input; mutation (tag edits, category overrides)
// happens in calling layers.
type Receipt struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
	StoreName string
	RawText   string
	Notes     string
	Category  Category
	Tags      []string
	Items     []LineItem
	Total     float64
}

// FromParsed builds a Receipt from a parse result and its assigned category.
// The ID is left empty; the persistence layer assigns one on save.
func FromParsed(parsed ParsedReceipt, category Category, rawText string) Receipt {
	return Receipt{
		Date:      parsed.Date,
		StoreName: parsed.StoreName,
		Category:  category,
		RawText:   rawText,
		Items:     parsed.Items,
		Total:     parsed.Total,
	}
}
