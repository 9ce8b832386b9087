package pages

import (
	"fmt"

	"github.com/go-rod/rod/lib/proto"

	"dev/bravebird/qa-automation-go/pkg/browser"
)

// SearchResultsPage is the page object for the view shown after a search.
type SearchResultsPage struct {
	driver *browser.Driver
}

// NewSearchResultsPage binds a results page object to a driver.
func NewSearchResultsPage(d *browser.Driver) *SearchResultsPage {
	return &SearchResultsPage{driver: d}
}

// WaitForResults blocks until the results container is rendered. Returns
// false when it never shows up, an error for unrelated failures.
func (p *SearchResultsPage) WaitForResults() (bool, error) {
	pres, err := p.driver.Visibility(ResultsContainer, browser.DefaultTimeout)
	return pres == browser.Visible, err
}

// ResultsCount returns the number of rendered results. It is 0 exactly when
// the no-results indicator is shown; otherwise it counts the result items.
func (p *SearchResultsPage) ResultsCount() (int, error) {
	displayed, err := p.IsNoResultsDisplayed()
	if err != nil {
		return 0, err
	}
	if displayed {
		return 0, nil
	}
	items, err := p.driver.FindAll(ResultItem)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// ResultTitles returns the title text of every rendered result.
func (p *SearchResultsPage) ResultTitles() ([]string, error) {
	items, err := p.driver.FindAll(ResultItem)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titleEl, err := item.Element(ResultTitle.Selector)
		if err != nil {
			return nil, fmt.Errorf("result item has no title element: %w", err)
		}
		text, err := titleEl.Text()
		if err != nil {
			return nil, fmt.Errorf("failed to read result title: %w", err)
		}
		titles = append(titles, text)
	}
	return titles, nil
}

// ClickFirstResult opens the first search result.
func (p *SearchResultsPage) ClickFirstResult() error {
	first, err := p.driver.WaitClickable(ResultItem, browser.DefaultTimeout)
	if err != nil {
		return err
	}
	if err := first.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click first result: %w", err)
	}
	return nil
}

// IsNoResultsDisplayed reports whether the no-results indicator is shown.
func (p *SearchResultsPage) IsNoResultsDisplayed() (bool, error) {
	pres, err := p.driver.Visibility(NoResultsMessage, visibilityProbe)
	return pres == browser.Visible, err
}

// GoBackToSearch clicks the back-to-search control.
func (p *SearchResultsPage) GoBackToSearch() error {
	back, err := p.driver.WaitClickable(BackToSearchButton, visibilityProbe)
	if err != nil {
		return err
	}
	if err := back.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click back-to-search: %w", err)
	}
	return nil
}

// PageInfo summarizes the results page state.
type PageInfo struct {
	ResultsLoaded      bool
	ResultsCount       int
	ResultTitles       []string
	NoResultsDisplayed bool
	Title              string
	URL                string
}

// Info collects comprehensive information about the results page.
func (p *SearchResultsPage) Info() (PageInfo, error) {
	var info PageInfo
	var err error

	if info.ResultsLoaded, err = p.WaitForResults(); err != nil {
		return info, err
	}
	if info.ResultsCount, err = p.ResultsCount(); err != nil {
		return info, err
	}
	if info.ResultTitles, err = p.ResultTitles(); err != nil {
		return info, err
	}
	if info.NoResultsDisplayed, err = p.IsNoResultsDisplayed(); err != nil {
		return info, err
	}
	if info.Title, err = p.driver.Title(); err != nil {
		return info, err
	}
	if info.URL, err = p.driver.CurrentURL(); err != nil {
		return info, err
	}
	return info, nil
}
