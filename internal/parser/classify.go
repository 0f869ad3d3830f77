package parser

import "strings"

// LineKind buckets a receipt line for the parsing pass.
type LineKind int

const (
	// KindItem is a candidate item line: name plus price.
	KindItem LineKind = iota
	// KindTotal carries the document total.
	KindTotal
	// KindSubtotal carries the pre-tax subtotal.
	KindSubtotal
	// KindTax carries the tax amount.
	KindTax
	// KindNoise is a payment or footer line that produces no item.
	KindNoise
)

// exclusionKeywords mark payment and footer lines that must not become
// items. Matching is substring containment on the lowercased line, not
// word-boundary matching.
var exclusionKeywords = []string{
	"subtotal", "sub total", "total", "grand total",
	"tax", "vat",
	"cash", "change", "paid", "payment", "balance", "due", "tender",
	"credit", "debit", "card", "visa", "mastercard", "amex",
	"thank you", "thanks",
}

// Classify buckets a single receipt line. Subtotal is tested before total
// so "subtotal" lines never register as the document total.
func Classify(line string) LineKind {
	lower := strings.ToLower(line)

	switch {
	case strings.Contains(lower, "subtotal") || strings.Contains(lower, "sub total"):
		return KindSubtotal
	case strings.Contains(lower, "total"):
		return KindTotal
	case strings.Contains(lower, "tax"):
		return KindTax
	}

	for _, kw := range exclusionKeywords {
		if strings.Contains(lower, kw) {
			return KindNoise
		}
	}
	return KindItem
}

// storeNameLeadLines is how far into the document a store name may appear.
const storeNameLeadLines = 3

// StoreName picks the store name from the first non-empty lines of the
// document. A line qualifies if it is longer than 3 characters and contains
// no colon and none of "receipt", "store", "date"; the longest qualifying
// line wins. When none qualify, the very first line is used.
func StoreName(lines []string) string {
	best := ""
	for i := 0; i < len(lines) && i < storeNameLeadLines; i++ {
		line := lines[i]
		if len(line) <= 3 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "receipt") ||
			strings.Contains(lower, "store") ||
			strings.Contains(lower, "date") ||
			strings.Contains(line, ":") {
			continue
		}
		if len(line) > len(best) {
			best = line
		}
	}
	if best == "" && len(lines) > 0 {
		return lines[0]
	}
	return best
}
