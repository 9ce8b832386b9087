package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Driver is the capability surface page objects depend on: find elements,
// wait on them, and navigate. Page objects hold a Driver by reference
// instead of inheriting from a shared base page.
type Driver struct {
	page    *rod.Page
	timeout time.Duration
}

// NewDriver wraps an existing page. timeout bounds Find and the default
// waits; zero means DefaultTimeout.
func NewDriver(page *rod.Page, timeout time.Duration) *Driver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Driver{page: page, timeout: timeout}
}

// Page exposes the underlying page for operations the capability surface
// does not cover (screenshots, raw CDP).
func (d *Driver) Page() *rod.Page {
	return d.page
}

// Find returns the first element matching the locator, waiting up to the
// driver timeout for it to appear. Returns ErrElementNotFound when nothing
// matches in time.
func (d *Driver) Find(loc Locator) (*rod.Element, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	el, err := resolve(d.page.Timeout(d.timeout), loc)
	if err != nil {
		if isDeadline(err) {
			return nil, fmt.Errorf("%w: %s after %s", ErrElementNotFound, loc, d.timeout)
		}
		return nil, fmt.Errorf("failed to find %s: %w", loc, err)
	}
	return el, nil
}

// FindAll returns every element currently matching the locator, without
// waiting. An empty slice is not an error.
func (d *Driver) FindAll(loc Locator) ([]*rod.Element, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	var els rod.Elements
	var err error
	switch loc.Strategy {
	case StrategyCSS:
		els, err = d.page.Elements(loc.Selector)
	default:
		els, err = d.page.ElementsX(asXPath(loc))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find all %s: %w", loc, err)
	}
	return els, nil
}

// WaitVisible blocks until the element is present and visible, or the
// timeout elapses (ErrWaitTimeout).
func (d *Driver) WaitVisible(loc Locator, timeout time.Duration) (*rod.Element, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	p := d.page.Timeout(timeout)
	el, err := resolve(p, loc)
	if err != nil {
		return nil, classifyWait(loc, timeout, err)
	}
	if err := el.WaitVisible(); err != nil {
		return nil, classifyWait(loc, timeout, err)
	}
	return el, nil
}

// WaitClickable blocks until the element is visible, enabled and not
// covered, or the timeout elapses (ErrWaitTimeout).
func (d *Driver) WaitClickable(loc Locator, timeout time.Duration) (*rod.Element, error) {
	el, err := d.WaitVisible(loc, timeout)
	if err != nil {
		return nil, err
	}
	if _, err := el.WaitInteractable(); err != nil {
		return nil, classifyWait(loc, timeout, err)
	}
	return el, nil
}

// Visibility checks whether the element becomes present and visible within
// the timeout. Absent with a nil error means the element did not show up;
// any failure unrelated to absence is returned as an error so it cannot be
// mistaken for "not visible".
func (d *Driver) Visibility(loc Locator, timeout time.Duration) (Presence, error) {
	_, err := d.WaitVisible(loc, timeout)
	switch {
	case err == nil:
		return Visible, nil
	case isAbsence(err):
		return Absent, nil
	default:
		return Absent, err
	}
}

// Navigate loads the URL and waits for the load event.
func (d *Driver) Navigate(url string) error {
	if err := d.page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := d.page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}
	return nil
}

// Title returns the current page title.
func (d *Driver) Title() (string, error) {
	info, err := d.page.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get page info: %w", err)
	}
	return info.Title, nil
}

// CurrentURL returns the current page URL.
func (d *Driver) CurrentURL() (string, error) {
	info, err := d.page.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get page info: %w", err)
	}
	return info.URL, nil
}

// Screenshot captures the page as PNG and writes it to path, creating the
// parent directory if needed.
func (d *Driver) Screenshot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	data, err := d.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("failed to take screenshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save screenshot: %w", err)
	}
	return nil
}

// Refresh reloads the current page.
func (d *Driver) Refresh() error {
	if err := d.page.Reload(); err != nil {
		return fmt.Errorf("failed to reload page: %w", err)
	}
	return d.page.WaitLoad()
}

// resolve finds one element on p according to the locator strategy. p is
// expected to carry the caller's timeout.
func resolve(p *rod.Page, loc Locator) (*rod.Element, error) {
	switch loc.Strategy {
	case StrategyCSS:
		return p.Element(loc.Selector)
	default:
		return p.ElementX(asXPath(loc))
	}
}

// asXPath converts xpath and text locators to an XPath expression. Text
// locators match elements whose own text equals the selector.
func asXPath(loc Locator) string {
	if loc.Strategy == StrategyText {
		return fmt.Sprintf("//*[normalize-space(text())=%q]", loc.Selector)
	}
	return loc.Selector
}

func classifyWait(loc Locator, timeout time.Duration, err error) error {
	if isDeadline(err) {
		return fmt.Errorf("%w: %s after %s", ErrWaitTimeout, loc, timeout)
	}
	return fmt.Errorf("failed waiting for %s: %w", loc, err)
}
