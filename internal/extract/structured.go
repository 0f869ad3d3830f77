// Package extract normalizes structured receipt guesses from an external
// extraction service into the same ParsedReceipt shape the text parser
// produces.
package extract

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/quillback/scanledger/internal/model"
)

// guessDateLayout is the single date format the external service is
// expected to emit.
const guessDateLayout = "01/02/2006"

// StructuredGuess is the best-effort receipt an external vision or
// language-model extractor returns. Any field may be absent.
type StructuredGuess struct {
	StoreName *string     `json:"store_name"`
	Date      *string     `json:"date"`
	Total     *float64    `json:"total"`
	Items     []GuessItem `json:"items"`
}

// GuessItem is one line item in a structured guess.
type GuessItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Adapter converts structured guesses into ParsedReceipts. Malformed
// external output degrades to defaults; the adapter never fails a scan.
type Adapter struct {
	now func() time.Time
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithNow overrides the clock used for date sanity checks and fallback.
func WithNow(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

// NewAdapter creates an Adapter.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Normalize maps a structured guess onto the ParsedReceipt shape. Missing
// fields default to store name "Unknown Store", the current date, an empty
// item list, and total 0.
func (a *Adapter) Normalize(guess StructuredGuess) model.ParsedReceipt {
	now := a.now()

	receipt := model.ParsedReceipt{
		StoreName: "Unknown Store",
		Date:      now,
		Items:     []model.LineItem{},
	}

	if guess.StoreName != nil {
		if name := strings.TrimSpace(*guess.StoreName); name != "" {
			receipt.StoreName = name
		}
	}

	if guess.Date != nil {
		if date, err := time.Parse(guessDateLayout, strings.TrimSpace(*guess.Date)); err == nil && plausibleDate(date, now) {
			receipt.Date = date
		}
	}

	for _, item := range guess.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Price < 0 {
			continue
		}
		receipt.Items = append(receipt.Items, model.LineItem{
			Name:     name,
			Price:    item.Price,
			Quantity: 1,
		})
	}

	if guess.Total != nil && *guess.Total >= 0 {
		receipt.Total = *guess.Total
	}

	return receipt
}

// NormalizeJSON decodes a raw service payload and normalizes it. A payload
// that fails to decode yields the all-defaults receipt rather than an
// error, matching the adapter's silent-substitution failure mode.
func (a *Adapter) NormalizeJSON(payload []byte) model.ParsedReceipt {
	var guess StructuredGuess
	if err := json.Unmarshal(payload, &guess); err != nil {
		return a.Normalize(StructuredGuess{})
	}
	return a.Normalize(guess)
}

// plausibleDate guards against the external source hallucinating a date:
// anything more than 2 years in the past or more than 1 month in the
// future is discarded in favor of the current date.
func plausibleDate(date, now time.Time) bool {
	if date.Before(now.AddDate(-2, 0, 0)) {
		return false
	}
	if date.After(now.AddDate(0, 1, 0)) {
		return false
	}
	return true
}
