// Package extractor reconstructs transaction records from the flattened text
// of the portal's movement list and aggregates the ones that match a
// description pattern inside a date window.
package extractor

import (
	"regexp"
	"strings"

	"retention-scraper/internal/domain"
	"retention-scraper/internal/parser"

	"github.com/shopspring/decimal"
)

// RetentionPattern matches the portal's gross-income tax retention label
// ("Ing. Brutos S/ Cred" and its abbreviation variants) anywhere in a
// description.
var RetentionPattern = regexp.MustCompile(`(?i)Ing\.? Brutos S/? Cred`)

// RawMatch is the unparsed date/description/amount triple found in page
// text. Transient: produced and consumed within one extraction pass.
type RawMatch struct {
	DateText        string
	DescriptionText string
	AmountText      string
}

// TripleScanner finds candidate transaction triples in flattened page text.
// The line-based implementation below can be swapped for a structured
// accessor without touching the filtering and aggregation contract.
type TripleScanner interface {
	ScanTriples(text string) []RawMatch
}

var (
	dateLine   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	amountLine = regexp.MustCompile(`^-?\$?[0-9][0-9.,]*$`)
)

// maxTripleSpan bounds how many lines past a date line the scanner reads
// before giving up on the candidate.
const maxTripleSpan = 6

// LineScanner scans for the repeating date / description / amount pattern
// the portal renders as consecutive lines of free text.
type LineScanner struct{}

// ScanTriples walks the text line by line. A candidate opens at a date-shaped
// line, collects one or more description lines, and closes at an
// amount-shaped line. Malformed candidates are skipped and the scan restarts
// at the following line, so one bad record never aborts the pass.
func (LineScanner) ScanTriples(text string) []RawMatch {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var matches []RawMatch
	for i := 0; i < len(lines); i++ {
		date := strings.TrimSpace(lines[i])
		if !dateLine.MatchString(date) {
			continue
		}

		var description []string
		for j := i + 1; j < len(lines) && j <= i+maxTripleSpan; j++ {
			line := strings.TrimSpace(lines[j])
			if line == "" {
				continue
			}
			if dateLine.MatchString(line) {
				// A new record began before this one closed; restart there.
				break
			}
			if amountLine.MatchString(line) && len(description) > 0 {
				matches = append(matches, RawMatch{
					DateText:        date,
					DescriptionText: strings.Join(description, " "),
					AmountText:      line,
				})
				i = j
				break
			}
			description = append(description, line)
		}
	}
	return matches
}

// Extract scans pageText for transaction triples and keeps those whose
// parsed date falls inside rng (both endpoints inclusive) and whose
// description matches pattern. Both predicates are required; a candidate
// whose date or amount fails to parse is skipped, not fatal. Pure: identical
// inputs always yield an identical result, including ordering.
func Extract(pageText string, rng domain.DateRange, pattern *regexp.Regexp) domain.ExtractionResult {
	return ExtractWith(LineScanner{}, pageText, rng, pattern)
}

// ExtractWith runs the extraction over the triples produced by scanner.
func ExtractWith(scanner TripleScanner, pageText string, rng domain.DateRange, pattern *regexp.Regexp) domain.ExtractionResult {
	result := domain.ExtractionResult{Total: decimal.Zero}

	for _, raw := range scanner.ScanTriples(pageText) {
		date, err := parser.ParseDate(raw.DateText)
		if err != nil {
			continue
		}
		if !rng.Contains(date) || !pattern.MatchString(raw.DescriptionText) {
			continue
		}
		amount, err := parser.ParseAmount(raw.AmountText)
		if err != nil {
			continue
		}

		result.Transactions = append(result.Transactions, domain.Transaction{
			Date:        date,
			Description: raw.DescriptionText,
			Amount:      amount,
		})
		result.Total = result.Total.Add(amount)
	}
	return result
}
