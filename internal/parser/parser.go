package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/quillback/scanledger/internal/model"
)

var (
	// quantityPrefixRe strips a leading "2 x " marker or bare leading
	// integer from an item name.
	quantityPrefixRe = regexp.MustCompile(`(?i)^\d+\s*x\s+|^\d+\s+`)
	spaceRunRe       = regexp.MustCompile(`\s+`)
)

// Parser builds normalized receipts from raw OCR transcripts. It holds no
// mutable state and is safe for concurrent use on different inputs.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithNow overrides the clock used when no date can be extracted.
func WithNow(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts a raw, newline-delimited OCR transcript into a
// ParsedReceipt. It is best-effort and never fails: missing fields resolve
// through documented defaults (current date, derived total) rather than
// errors, since receipt text is inherently noisy.
func (p *Parser) Parse(rawText string) model.ParsedReceipt {
	lines := splitLines(rawText)

	receipt := model.ParsedReceipt{
		StoreName: StoreName(lines),
		Items:     []model.LineItem{},
	}

	var (
		date                                       time.Time
		subtotal, tax, total                       float64
		haveDate, haveSubtotal, haveTax, haveTotal bool
	)

	for _, line := range lines {
		// Last date match wins: receipts often repeat the date, and a
		// footer timestamp supersedes the header one.
		if d, ok := ExtractDate(line); ok {
			date, haveDate = d, true
		}

		price, ok := LastPrice(line)
		if !ok {
			continue
		}

		switch Classify(line) {
		case KindTotal:
			total, haveTotal = price, true
		case KindSubtotal:
			subtotal, haveSubtotal = price, true
		case KindTax:
			tax, haveTax = price, true
		case KindNoise:
			// Payment lines produce no item.
		case KindItem:
			if name := itemName(line); len(name) > 1 {
				receipt.Items = append(receipt.Items, model.LineItem{
					Name:     name,
					Price:    price,
					Quantity: 1,
				})
			}
		}
	}

	receipt.Total = resolveTotal(totals{
		total:        total,
		subtotal:     subtotal,
		tax:          tax,
		haveTotal:    haveTotal,
		haveSubtotal: haveSubtotal,
		haveTax:      haveTax,
	}, receipt.Items)

	if !haveDate {
		date = p.now()
	}
	receipt.Date = date

	return receipt
}

// totals collects the amounts found on total, subtotal, and tax lines.
type totals struct {
	total        float64
	subtotal     float64
	tax          float64
	haveTotal    bool
	haveSubtotal bool
	haveTax      bool
}

// resolveTotal is the layered total default: a direct total line wins,
// then subtotal+tax, then sum of item prices plus any known tax.
func resolveTotal(t totals, items []model.LineItem) float64 {
	switch {
	case t.haveTotal:
		return t.total
	case t.haveSubtotal && t.haveTax:
		return t.subtotal + t.tax
	default:
		sum := 0.0
		for _, item := range items {
			sum += item.Price
		}
		return sum + t.tax
	}
}

// itemName removes every price token and any leading quantity marker from
// an item line, then collapses internal whitespace.
func itemName(line string) string {
	name := StripPrices(line)
	name = strings.TrimSpace(name)
	name = quantityPrefixRe.ReplaceAllString(name, "")
	name = spaceRunRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// splitLines returns the non-empty, whitespace-trimmed lines of text in
// document order.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
