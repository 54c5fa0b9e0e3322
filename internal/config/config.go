// Package config loads run settings from the environment and the command
// line, validating them before any browser resource is acquired.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"retention-scraper/internal/domain"
	"retention-scraper/internal/parser"

	"github.com/joho/godotenv"
)

// Environment variable names, kept from the original deployment.
const (
	EnvDocument = "ING_BRUTOS_DOCUMENTO"
	EnvUser     = "ING_BRUTOS_USER"
	EnvPassword = "ING_BRUTOS_PASSWORD"
	EnvAccount  = "ING_BRUTOS_ACCOUNT_NUMBER"
	EnvHeadless = "HEADLESS"
)

// Config is everything a run needs.
type Config struct {
	Credentials    domain.Credentials
	AccountLocator string
	Range          domain.DateRange
	Headless       bool
}

// Load reads the environment (after a best-effort .env load) and the
// --from/--to flag values into a validated Config. Either flag may be empty,
// in which case that bound defaults to the previous calendar month.
func Load(fromText, toText string, now time.Time) (*Config, error) {
	// A missing .env file is fine; the variables may be exported directly.
	_ = godotenv.Load()

	cfg := &Config{
		Credentials: domain.Credentials{
			DocumentNumber: os.Getenv(EnvDocument),
			Username:       os.Getenv(EnvUser),
			Password:       os.Getenv(EnvPassword),
		},
		AccountLocator: os.Getenv(EnvAccount),
		Headless:       isTruthy(os.Getenv(EnvHeadless)),
	}

	var problems []string
	if cfg.Credentials.DocumentNumber == "" {
		problems = append(problems, EnvDocument+" is not set")
	}
	if cfg.Credentials.Username == "" {
		problems = append(problems, EnvUser+" is not set")
	}
	if cfg.Credentials.Password == "" {
		problems = append(problems, EnvPassword+" is not set")
	}
	if cfg.AccountLocator == "" {
		problems = append(problems, EnvAccount+" is not set")
	}

	rng, err := ResolveRange(fromText, toText, now)
	if err != nil {
		problems = append(problems, err.Error())
	}
	cfg.Range = rng

	if len(problems) > 0 {
		return nil, &domain.ConfigurationError{Problems: problems}
	}
	return cfg, nil
}

// ResolveRange builds the date window from the flag values, defaulting
// either missing bound to the matching edge of the previous calendar month.
func ResolveRange(fromText, toText string, now time.Time) (domain.DateRange, error) {
	fallback := domain.PreviousMonth(now)
	from := fallback.From
	to := fallback.To

	if fromText != "" {
		d, err := parser.ParseDate(fromText)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid --from date: %w", err)
		}
		from = d
	}
	if toText != "" {
		d, err := parser.ParseDate(toText)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid --to date: %w", err)
		}
		to = d
	}

	rng, err := domain.NewDateRange(from, to)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid date range: %w", err)
	}
	return rng, nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
