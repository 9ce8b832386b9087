// Package pages binds locators and actions to the logical screens of the
// demo storefront. Each page object holds a browser.Driver by reference;
// locators live here as package values so every selector for a screen is
// declared in one place.
package pages

import "dev/bravebird/qa-automation-go/pkg/browser"

// Landing page locators.
var (
	SearchBox  = browser.ByXPath("//*[@placeholder='Search']")
	SearchIcon = browser.ByText("Search")

	PageHeader  = browser.ByCSS("header")
	MainContent = browser.ByCSS("main")
	PageFooter  = browser.ByCSS("footer")
)

// Search results page locators.
var (
	ResultsContainer  = browser.ByCSS(".search-results")
	ResultItem        = browser.ByCSS(".result-item")
	ResultTitle       = browser.ByCSS(".result-title")
	ResultDescription = browser.ByCSS(".result-description")
	ResultLink        = browser.ByCSS(".result-link")

	NoResultsMessage   = browser.ByCSS(".no-results")
	BackToSearchButton = browser.ByCSS(".back-to-search")

	NextPageButton     = browser.ByCSS(".next-page")
	PreviousPageButton = browser.ByCSS(".previous-page")
	PageNumber         = browser.ByCSS(".page-number")
)

// Locators shared across pages.
var (
	HomeLink       = browser.ByCSS(".home-link")
	Logo           = browser.ByCSS(".logo")
	LoadingSpinner = browser.ByCSS(".loading-spinner")
	ErrorMessage   = browser.ByCSS(".error-message")
	SuccessMessage = browser.ByCSS(".success-message")
)
