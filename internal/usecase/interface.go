package usecase

import (
	"context"
	"time"
)

// BankSession is the narrow view of a live browser session the navigation
// machine needs. The usecase layer depends on this interface, not on the
// rod-backed implementation in the gateway package.
//
//go:generate mockgen -destination=mocks/mock_session.go -source=interface.go BankSession
type BankSession interface {
	// Navigate loads the given URL and waits for the initial page load.
	Navigate(ctx context.Context, url string) error
	// FillField waits up to timeout for selector to become visible and
	// types value into it. Returns false with a nil error when the field
	// never became visible within the bound.
	FillField(ctx context.Context, selector, value string, timeout time.Duration) (bool, error)
	// AdvanceFocus moves keyboard focus to the next form field. The login
	// form reveals its second-step fields on focus advance.
	AdvanceFocus(ctx context.Context) error
	// ClickText clicks the first visible element containing text. Returns
	// false with a nil error when no such element appears within timeout.
	ClickText(ctx context.Context, text string, timeout time.Duration) (bool, error)
	// WaitSettled blocks until no page-load network activity is
	// outstanding, or timeout elapses.
	WaitSettled(ctx context.Context, timeout time.Duration) error
	// DisableNewTabs strips open-in-new-tab markers from the current
	// document so a click can never spawn a second browsing context.
	// Idempotent.
	DisableNewTabs(ctx context.Context) error
	// PageText returns the visible text of the whole page.
	PageText(ctx context.Context) (string, error)
	// MovementText returns the text of the movement list container, falling
	// back to the whole page when no such container exists.
	MovementText(ctx context.Context) (string, error)
	// Close releases the browser session.
	Close() error
}

// SessionFactory opens a browser session. The runner only invokes it after
// configuration has been validated, so no browser resource is acquired for a
// run that cannot proceed.
type SessionFactory func(ctx context.Context) (BankSession, error)
