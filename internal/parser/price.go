// Package parser turns raw OCR receipt text into a normalized ParsedReceipt.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// priceRe matches either a currency-prefixed amount ($ then optional space)
// or a bare decimal with exactly two fraction digits. Receipts print the
// price after the item name, so the last match on a line is the canonical
// price for that line.
var priceRe = regexp.MustCompile(`\$\s?\d+\.\d{2}|\d+\.\d{2}`)

// Prices returns every currency-like amount found on line, in left-to-right
// order. Zero or negative parses are discarded as OCR noise. A line with no
// recognizable amount yields an empty result, never an error.
func Prices(line string) []float64 {
	matches := priceRe.FindAllString(line, -1)
	if len(matches) == 0 {
		return nil
	}

	amounts := make([]float64, 0, len(matches))
	for _, m := range matches {
		raw := strings.TrimSpace(strings.TrimPrefix(m, "$"))
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			continue
		}
		amounts = append(amounts, amount)
	}
	return amounts
}

// LastPrice returns the rightmost amount on line, resolving unit-price
// followed by extended-price in favor of the final token.
func LastPrice(line string) (float64, bool) {
	amounts := Prices(line)
	if len(amounts) == 0 {
		return 0, false
	}
	return amounts[len(amounts)-1], true
}

// StripPrices removes every price token from line. Item name extraction
// must drop all occurrences, not just the one used as the price, so no
// stray secondary amount survives in the name.
func StripPrices(line string) string {
	return priceRe.ReplaceAllString(line, "")
}
