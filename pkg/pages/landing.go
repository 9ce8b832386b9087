package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"

	"dev/bravebird/qa-automation-go/pkg/browser"
)

// DefaultLandingURL is the public demo storefront.
const DefaultLandingURL = "https://www.bstackdemo.com/"

// visibilityProbe bounds the quick is-it-there checks.
const visibilityProbe = 5 * time.Second

// LandingPage is the page object for the storefront landing page.
type LandingPage struct {
	driver *browser.Driver
	url    string
}

// NewLandingPage binds a landing page object to a driver. url may be empty,
// in which case the public demo site is used.
func NewLandingPage(d *browser.Driver, url string) *LandingPage {
	if url == "" {
		url = DefaultLandingURL
	}
	return &LandingPage{driver: d, url: url}
}

// Load navigates to the landing page and waits for the search box.
func (p *LandingPage) Load() error {
	if err := p.driver.Navigate(p.url); err != nil {
		return err
	}
	if _, err := p.driver.WaitVisible(SearchBox, browser.DefaultTimeout); err != nil {
		return fmt.Errorf("landing page did not load: %w", err)
	}
	return nil
}

// Title returns the current page title.
func (p *LandingPage) Title() (string, error) {
	return p.driver.Title()
}

// CurrentURL returns the current page URL.
func (p *LandingPage) CurrentURL() (string, error) {
	return p.driver.CurrentURL()
}

// VerifyLoaded checks the landing page is the expected application.
func (p *LandingPage) VerifyLoaded() error {
	title, err := p.driver.Title()
	if err != nil {
		return err
	}
	if !strings.Contains(title, "StackDemo") {
		return fmt.Errorf("expected %q in title, got %q", "StackDemo", title)
	}
	return nil
}

// SearchFor types the term into the search box and triggers the search.
func (p *LandingPage) SearchFor(term string) error {
	box, err := p.driver.Find(SearchBox)
	if err != nil {
		return err
	}
	if err := box.Input(term); err != nil {
		return fmt.Errorf("failed to type search term: %w", err)
	}
	icon, err := p.driver.WaitClickable(SearchIcon, visibilityProbe)
	if err != nil {
		return err
	}
	if err := icon.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click search icon: %w", err)
	}
	return nil
}

// SearchBoxText returns the current value of the search input.
func (p *LandingPage) SearchBoxText() (string, error) {
	box, err := p.driver.Find(SearchBox)
	if err != nil {
		return "", err
	}
	value, err := box.Property("value")
	if err != nil {
		return "", fmt.Errorf("failed to read search box value: %w", err)
	}
	return value.String(), nil
}

// ClearSearch empties the search box.
func (p *LandingPage) ClearSearch() error {
	box, err := p.driver.Find(SearchBox)
	if err != nil {
		return err
	}
	if err := box.SelectAllText(); err != nil {
		return fmt.Errorf("failed to select search text: %w", err)
	}
	if err := box.Type(input.Backspace); err != nil {
		return fmt.Errorf("failed to clear search box: %w", err)
	}
	return nil
}

// IsSearchBoxVisible reports whether the search box is present and visible.
// Failures unrelated to absence are returned, not folded into false.
func (p *LandingPage) IsSearchBoxVisible() (bool, error) {
	pres, err := p.driver.Visibility(SearchBox, visibilityProbe)
	return pres == browser.Visible, err
}

// IsSearchIconVisible reports whether the search trigger is present and
// visible.
func (p *LandingPage) IsSearchIconVisible() (bool, error) {
	pres, err := p.driver.Visibility(SearchIcon, visibilityProbe)
	return pres == browser.Visible, err
}

// ElementsStatus summarizes the key landing page elements.
type ElementsStatus struct {
	SearchBoxVisible  bool
	SearchIconVisible bool
	Title             string
	URL               string
}

// Status collects the state of the key page elements.
func (p *LandingPage) Status() (ElementsStatus, error) {
	var st ElementsStatus
	var err error

	if st.SearchBoxVisible, err = p.IsSearchBoxVisible(); err != nil {
		return st, err
	}
	if st.SearchIconVisible, err = p.IsSearchIconVisible(); err != nil {
		return st, err
	}
	if st.Title, err = p.Title(); err != nil {
		return st, err
	}
	if st.URL, err = p.CurrentURL(); err != nil {
		return st, err
	}
	return st, nil
}
