package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"retention-scraper/internal/config"
	"retention-scraper/internal/domain"
	"retention-scraper/internal/extractor"
	"retention-scraper/internal/gateway"
	"retention-scraper/internal/usecase"

	"github.com/charmbracelet/log"
)

func main() {
	fromFlag := flag.String("from", "", "Start date in DD/MM/YYYY format (default: first day of previous month)")
	toFlag := flag.String("to", "", "End date in DD/MM/YYYY format (default: last day of previous month)")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Sums "Ing. Brutos S/ Cred" tax retentions from the online-banking movement list.

Usage:
  retentions [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment (read from the process environment or a .env file):
  %s    document number used to log in
  %s         portal username (filled only when the portal asks for it)
  %s     portal password
  %s   account to locate on the dashboard
  %s                    set to 1/true to run the browser without a window

Examples:
  retentions --from 01/11/2025 --to 30/11/2025
  retentions --from 15/11/2025
  retentions
`, config.EnvDocument, config.EnvUser, config.EnvPassword, config.EnvAccount, config.EnvHeadless)
	}
	flag.Parse()

	logger := log.NewWithOptions(os.Stdout, log.Options{ReportTimestamp: true})
	if *verboseFlag {
		logger.SetLevel(log.DebugLevel)
	}

	// Configuration problems fail fast, before any browser is launched.
	cfg, err := config.Load(*fromFlag, *toFlag, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger.Info("date range",
		"from", cfg.Range.From.Format(domain.DateLayout),
		"to", cfg.Range.To.Format(domain.DateLayout))

	sessions := usecase.SessionFactory(func(ctx context.Context) (usecase.BankSession, error) {
		return gateway.NewRodSession(cfg.Headless)
	})
	runner := usecase.NewRunner(sessions, logger, usecase.DefaultTimeouts())

	result, err := runner.Run(context.Background(), usecase.RunConfig{
		Credentials:    cfg.Credentials,
		AccountLocator: cfg.AccountLocator,
		Range:          cfg.Range,
		Pattern:        extractor.RetentionPattern,
	})
	if err != nil {
		// A failed session still ends the run gracefully with a zero total.
		var notFound *domain.AccountNotFoundError
		switch {
		case errors.As(err, &notFound):
			logger.Error("account not found", "locator", notFound.Locator)
			logger.Error("visible page text follows for diagnosis")
			fmt.Println(notFound.Snippet)
		case errors.Is(err, domain.ErrLoginFieldsNotFound):
			logger.Error("login form never presented its fields, aborting session")
		default:
			logger.Error("navigation failed", "err", err)
		}
	}

	fmt.Printf("\n>>> TOTAL RETENTIONS (%s to %s): $%s <<<\n",
		cfg.Range.From.Format(domain.DateLayout),
		cfg.Range.To.Format(domain.DateLayout),
		result.Total.StringFixed(2))
}
