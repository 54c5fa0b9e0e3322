// Package gateway adapts a real Chromium browser, driven over the DevTools
// protocol, to the session interface the navigation machine consumes.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// movementContainer locates the wrapper the portal renders the movement list
// into. The class names are generated, so only the list/grid hint is stable.
const movementContainer = `div[class*="list"], div[class*="grid"]`

// stripTargets removes the open-in-new-tab marker from every anchor so a
// click can never spawn a second browsing context.
const stripTargets = `() => {
	document.querySelectorAll('a[target="_blank"]').forEach(a => a.removeAttribute('target'));
}`

// containerProbe bounds how long MovementText looks for a dedicated list
// container before falling back to the whole page.
const containerProbe = 2 * time.Second

// requestQuiet is how long the network must stay quiet before a settle wait
// resolves.
const requestQuiet = 800 * time.Millisecond

// RodSession is a single live browser tab. It exclusively owns the browsing
// context for the duration of a run.
type RodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// NewRodSession launches a Chromium instance and opens one tab with the
// automation fingerprint suppressed. The portal blocks plainly automated
// browsers, hence the stealth page.
func NewRodSession(headless bool) (*RodSession, error) {
	l := launcher.New().Headless(headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &RodSession{launcher: l, browser: browser, page: page}, nil
}

// Navigate loads url and waits for the initial page load.
func (s *RodSession) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}
	return nil
}

// FillField types value into selector once it becomes visible. A field that
// never appears within timeout is reported as absent, not as an error; the
// caller decides whether absence is fatal.
func (s *RodSession) FillField(ctx context.Context, selector, value string, timeout time.Duration) (bool, error) {
	el, err := s.page.Context(ctx).Timeout(timeout).Element(selector)
	if err != nil {
		return false, nil
	}
	if err := el.WaitVisible(); err != nil {
		return false, nil
	}
	if err := el.Input(value); err != nil {
		return true, fmt.Errorf("typing into %s: %w", selector, err)
	}
	return true, nil
}

// AdvanceFocus presses Tab, which the login form uses to reveal its
// second-step fields.
func (s *RodSession) AdvanceFocus(ctx context.Context) error {
	if err := s.page.Context(ctx).Keyboard.Press(input.Tab); err != nil {
		return fmt.Errorf("pressing tab: %w", err)
	}
	return nil
}

// ClickText clicks the first visible element whose text contains text,
// searching the whole frame tree the way the devtools finder does. A miss
// within the bound is reported as absent, not as an error.
func (s *RodSession) ClickText(ctx context.Context, text string, timeout time.Duration) (bool, error) {
	page := s.page.Context(ctx).Timeout(timeout)
	result, err := page.Search(text)
	if err != nil {
		return false, nil
	}
	defer result.Release()

	el := result.First
	if err := el.WaitVisible(); err != nil {
		return false, nil
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return true, fmt.Errorf("clicking %q: %w", text, err)
	}
	return true, nil
}

// WaitSettled blocks until the page has gone quiet on the network, or the
// bound expires. Expiry is not an error: the caller treats a long-settling
// page like a settled one and relies on its own fallbacks.
func (s *RodSession) WaitSettled(ctx context.Context, timeout time.Duration) error {
	page := s.page.Context(ctx).Timeout(timeout)
	wait := page.WaitRequestIdle(requestQuiet, nil, nil, nil)
	wait()
	return nil
}

// DisableNewTabs strips target="_blank" from every anchor in the current
// document. Idempotent; applied before every click that risks spawning a
// second browsing context.
func (s *RodSession) DisableNewTabs(ctx context.Context) error {
	if _, err := s.page.Context(ctx).Eval(stripTargets); err != nil {
		return fmt.Errorf("stripping new-tab targets: %w", err)
	}
	return nil
}

// PageText returns the visible text of the whole page.
func (s *RodSession) PageText(ctx context.Context) (string, error) {
	body, err := s.page.Context(ctx).Element("body")
	if err != nil {
		return "", fmt.Errorf("locating page body: %w", err)
	}
	text, err := body.Text()
	if err != nil {
		return "", fmt.Errorf("reading page text: %w", err)
	}
	return text, nil
}

// MovementText returns the text of the movement list container, or the whole
// page when the portal rendered no dedicated container.
func (s *RodSession) MovementText(ctx context.Context) (string, error) {
	if el, err := s.page.Context(ctx).Timeout(containerProbe).Element(movementContainer); err == nil {
		if text, err := el.Text(); err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return s.PageText(ctx)
}

// Close releases the tab, the browser, and the launched process. Safe to
// call on a partially failed session.
func (s *RodSession) Close() error {
	err := s.browser.Close()
	s.launcher.Cleanup()
	if err != nil {
		return fmt.Errorf("closing browser: %w", err)
	}
	return nil
}
