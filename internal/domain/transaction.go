package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the portal's date rendering, e.g. "28/11/2025".
const DateLayout = "02/01/2006"

// Credentials are the portal login secrets. They are owned by the
// orchestrator, passed by reference into the login step, and never logged.
type Credentials struct {
	DocumentNumber string
	Username       string
	Password       string
}

// Transaction is a normalized tax-retention debit reconstructed from the
// movement list text. Amount is always a non-negative magnitude: the portal
// renders retentions as negative debits but the aggregate sums magnitudes.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// ExtractionResult holds the accepted transactions in the order they were
// encountered in the page text (reverse-chronological, as the portal renders
// them) plus their summed total.
type ExtractionResult struct {
	Transactions []Transaction
	Total        decimal.Decimal
}
