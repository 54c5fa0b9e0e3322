// Package parser converts the portal's locale-formatted date and amount
// strings into typed values.
package parser

import (
	"regexp"
	"strings"
	"time"

	"retention-scraper/internal/domain"

	"github.com/shopspring/decimal"
)

// dateShape is the fixed DD/MM/YYYY rendering of the movement list.
var dateShape = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseDate parses a DD/MM/YYYY string into a calendar date. Impossible
// dates such as 31/02/2025 are rejected, not normalized.
func ParseDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if !dateShape.MatchString(trimmed) {
		return time.Time{}, &domain.FormatError{Input: text, Reason: "expected DD/MM/YYYY"}
	}
	d, err := time.Parse(domain.DateLayout, trimmed)
	if err != nil {
		return time.Time{}, &domain.FormatError{Input: text, Reason: "impossible calendar date"}
	}
	return d, nil
}

// ParseAmount parses an amount such as "-$10.035,36" into its non-negative
// magnitude (10035.36). The locale uses "." for thousands and "," for
// decimals; the currency marker and the sign are discarded because the
// aggregate sums debit magnitudes regardless of the signed presentation.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &domain.FormatError{Input: text, Reason: "not a decimal numeral"}
	}
	return value.Abs(), nil
}
