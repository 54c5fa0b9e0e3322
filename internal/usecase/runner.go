package usecase

import (
	"context"
	"fmt"
	"regexp"

	"retention-scraper/internal/domain"
	"retention-scraper/internal/extractor"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// RunConfig is everything one scraping run needs.
type RunConfig struct {
	Credentials    domain.Credentials
	AccountLocator string
	Range          domain.DateRange
	Pattern        *regexp.Regexp
}

// Runner owns the browser session lifecycle for a single scraping run.
type Runner struct {
	sessions SessionFactory
	logger   *log.Logger
	timeouts Timeouts
}

func NewRunner(sessions SessionFactory, logger *log.Logger, timeouts Timeouts) *Runner {
	return &Runner{sessions: sessions, logger: logger, timeouts: timeouts}
}

// Run opens a session, drives it to the movement list, extracts matching
// retentions, and reports them. The session is released on every exit path.
// A terminal navigation failure is returned alongside an empty result so the
// caller can still finish the run gracefully with a zero total.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (domain.ExtractionResult, error) {
	empty := domain.ExtractionResult{Total: decimal.Zero}

	session, err := r.sessions(ctx)
	if err != nil {
		return empty, fmt.Errorf("opening browser session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			r.logger.Warn("closing browser session", "err", closeErr)
		}
	}()

	nav := NewNavigator(session, r.logger, r.timeouts)
	text, err := nav.MovementListText(ctx, &cfg.Credentials, cfg.AccountLocator)
	if err != nil {
		return empty, err
	}

	result := extractor.Extract(text, cfg.Range, cfg.Pattern)
	for _, tx := range result.Transactions {
		r.logger.Info("match",
			"date", tx.Date.Format(domain.DateLayout),
			"description", tx.Description,
			"amount", tx.Amount.StringFixed(2))
	}
	r.logger.Info("summary",
		"from", cfg.Range.From.Format(domain.DateLayout),
		"to", cfg.Range.To.Format(domain.DateLayout),
		"matches", len(result.Transactions),
		"total", result.Total.StringFixed(2))

	return result, nil
}
