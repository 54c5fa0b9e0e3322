package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"retention-scraper/internal/domain"

	"github.com/charmbracelet/log"
)

// State identifies where the session is in the login-to-movement-list flow.
type State string

const (
	StateLoggedOut           State = "logged_out"
	StateAwaitingCredentials State = "awaiting_credentials"
	StateAuthenticated       State = "authenticated"
	StateAccountSelected     State = "account_selected"
	StateMovementsVisible    State = "movements_visible"
	StateFilterApplied       State = "filter_applied"
	StateFailed              State = "failed"
)

// FieldOutcome tags whether an optional login field was presented by the
// portal this session.
type FieldOutcome string

const (
	FieldPresent FieldOutcome = "present"
	FieldAbsent  FieldOutcome = "absent"
)

// snippetLimit bounds the page-text excerpt attached to account-not-found
// diagnostics.
const snippetLimit = 1000

// Timeouts bounds each class of navigation wait. Exceeding a bound degrades
// to the step's fallback behavior, except where a step is documented to end
// the session.
type Timeouts struct {
	FieldVisible time.Duration // form fields and clickable labels
	NetworkIdle  time.Duration // settle barrier between navigations
	ListSettle   time.Duration // fixed delay for the movement list to render
}

// DefaultTimeouts are tuned for the portal's observed latency.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		FieldVisible: 5 * time.Second,
		NetworkIdle:  30 * time.Second,
		ListSettle:   5 * time.Second,
	}
}

// Navigator drives a session from the login page to a state where the
// movement list text can be snapshotted. Exactly one step is in flight at a
// time; each step blocks until its condition holds or its bound expires,
// then proceeds, falls back, or fails the session.
type Navigator struct {
	session  BankSession
	logger   *log.Logger
	timeouts Timeouts
	state    State
}

func NewNavigator(session BankSession, logger *log.Logger, timeouts Timeouts) *Navigator {
	return &Navigator{
		session:  session,
		logger:   logger,
		timeouts: timeouts,
		state:    StateLoggedOut,
	}
}

// State reports the machine's current state.
func (n *Navigator) State() State { return n.state }

// MovementListText runs the whole flow and returns the movement list text
// snapshot. Any returned error is terminal for the session; the caller owns
// releasing it.
func (n *Navigator) MovementListText(ctx context.Context, creds *domain.Credentials, accountLocator string) (string, error) {
	if err := n.login(ctx, creds); err != nil {
		n.state = StateFailed
		return "", err
	}
	if err := n.selectAccount(ctx, accountLocator); err != nil {
		n.state = StateFailed
		return "", err
	}
	n.openMovements(ctx)
	n.applyDebitFilter(ctx)

	text, err := n.session.MovementText(ctx)
	if err != nil {
		n.state = StateFailed
		return "", fmt.Errorf("reading movement list text: %w", err)
	}
	return text, nil
}

func (n *Navigator) login(ctx context.Context, creds *domain.Credentials) error {
	n.logger.Info("opening login page")
	if err := n.session.Navigate(ctx, loginURL); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}

	// Typing the document number and advancing focus is what reveals the
	// second-step fields.
	visible, err := n.session.FillField(ctx, selDocumentNumber, creds.DocumentNumber, n.timeouts.FieldVisible)
	if err != nil {
		return fmt.Errorf("filling document number: %w", err)
	}
	if !visible {
		return domain.ErrLoginFieldsNotFound
	}
	if err := n.session.AdvanceFocus(ctx); err != nil {
		return fmt.Errorf("advancing past document number: %w", err)
	}
	n.state = StateAwaitingCredentials

	// The username field only exists for some account types.
	outcome, err := n.fillOptionalField(ctx, selUsername, creds.Username)
	if err != nil {
		return err
	}
	n.logger.Debug("username field", "outcome", outcome)

	// The password field is mandatory; never seeing it ends the session.
	visible, err = n.session.FillField(ctx, selPassword, creds.Password, n.timeouts.FieldVisible)
	if err != nil {
		return fmt.Errorf("filling password: %w", err)
	}
	if !visible {
		return domain.ErrLoginFieldsNotFound
	}

	n.logger.Info("submitting credentials")
	if _, err := n.session.ClickText(ctx, labelSubmitLogin, n.timeouts.FieldVisible); err != nil {
		return fmt.Errorf("submitting credentials: %w", err)
	}

	// Synchronization point: later steps read the dashboard, so nothing may
	// proceed before the post-login navigation settles.
	if err := n.session.WaitSettled(ctx, n.timeouts.NetworkIdle); err != nil {
		return fmt.Errorf("waiting for dashboard: %w", err)
	}
	n.state = StateAuthenticated
	n.logger.Info("login finished")

	n.reconDashboard(ctx)
	return nil
}

// fillOptionalField fills selector if it becomes visible within the bound.
// Absence is a tagged outcome, not an error.
func (n *Navigator) fillOptionalField(ctx context.Context, selector, value string) (FieldOutcome, error) {
	if value == "" {
		return FieldAbsent, nil
	}
	visible, err := n.session.FillField(ctx, selector, value, n.timeouts.FieldVisible)
	if err != nil {
		return FieldAbsent, fmt.Errorf("filling optional field %s: %w", selector, err)
	}
	if !visible {
		return FieldAbsent, nil
	}
	return FieldPresent, nil
}

// reconDashboard logs which known keywords the dashboard surfaced. Debug
// aid only; skipped entirely unless debug logging is on.
func (n *Navigator) reconDashboard(ctx context.Context) {
	if n.logger.GetLevel() > log.DebugLevel {
		return
	}
	text, err := n.session.PageText(ctx)
	if err != nil {
		n.logger.Debug("could not read dashboard text", "err", err)
		return
	}
	for _, keyword := range dashboardKeywords {
		if count := strings.Count(text, keyword); count > 0 {
			n.logger.Debug("dashboard keyword", "keyword", keyword, "count", count)
		}
	}
}

func (n *Navigator) selectAccount(ctx context.Context, locator string) error {
	if err := n.session.DisableNewTabs(ctx); err != nil {
		return fmt.Errorf("sanitizing dashboard links: %w", err)
	}

	n.logger.Info("searching for account", "locator", locator)
	clicked, err := n.session.ClickText(ctx, locator, n.timeouts.FieldVisible)
	if err != nil {
		return fmt.Errorf("clicking account entry: %w", err)
	}

	if !clicked {
		// The dashboard does not always list every account. The accounts
		// entry expands the full listing; retry the search exactly once.
		n.logger.Info("account not on dashboard, opening accounts listing")
		opened, err := n.session.ClickText(ctx, labelAccountsList, n.timeouts.FieldVisible)
		if err != nil {
			return fmt.Errorf("opening accounts listing: %w", err)
		}
		if opened {
			if err := n.session.WaitSettled(ctx, n.timeouts.NetworkIdle); err != nil {
				return fmt.Errorf("waiting for accounts listing: %w", err)
			}
			if err := n.session.DisableNewTabs(ctx); err != nil {
				return fmt.Errorf("sanitizing listing links: %w", err)
			}
			clicked, err = n.session.ClickText(ctx, locator, n.timeouts.FieldVisible)
			if err != nil {
				return fmt.Errorf("clicking account entry: %w", err)
			}
		}
		if !clicked {
			snippet, textErr := n.session.PageText(ctx)
			if textErr != nil {
				snippet = ""
			}
			return &domain.AccountNotFoundError{Locator: locator, Snippet: truncate(snippet, snippetLimit)}
		}
	}

	if err := n.session.WaitSettled(ctx, n.timeouts.NetworkIdle); err != nil {
		return fmt.Errorf("waiting for account view: %w", err)
	}
	time.Sleep(n.timeouts.ListSettle)
	n.state = StateAccountSelected
	return nil
}

// openMovements actuates whichever movements label the portal surfaced, in
// priority order. When neither is visible the summary view is assumed to
// already contain the list.
func (n *Navigator) openMovements(ctx context.Context) {
	if err := n.session.DisableNewTabs(ctx); err != nil {
		n.logger.Warn("could not sanitize links before opening movements", "err", err)
	}

	for _, label := range []string{labelAllMovements, labelMovements} {
		clicked, err := n.session.ClickText(ctx, label, n.timeouts.FieldVisible)
		if err != nil {
			n.logger.Warn("movements label click failed", "label", label, "err", err)
			continue
		}
		if clicked {
			n.logger.Info("opened movements view", "label", label)
			if err := n.session.WaitSettled(ctx, n.timeouts.NetworkIdle); err != nil {
				n.logger.Warn("movements view never settled", "err", err)
			}
			break
		}
	}

	time.Sleep(n.timeouts.ListSettle)
	n.state = StateMovementsVisible
}

// applyDebitFilter narrows the list to money-out movements when the control
// exists. Best effort: extraction filters by date and description anyway.
func (n *Navigator) applyDebitFilter(ctx context.Context) {
	clicked, err := n.session.ClickText(ctx, labelDebitFilter, n.timeouts.FieldVisible)
	switch {
	case err != nil:
		n.logger.Warn("debit filter click failed", "err", err)
	case clicked:
		n.logger.Info("applied debit filter")
		if err := n.session.WaitSettled(ctx, n.timeouts.NetworkIdle); err != nil {
			n.logger.Warn("filtered list never settled", "err", err)
		}
		time.Sleep(n.timeouts.ListSettle)
	default:
		n.logger.Info("debit filter not present, using unfiltered list")
	}
	n.state = StateFilterApplied
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
