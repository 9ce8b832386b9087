package browser

import "fmt"

// Strategy identifies how a locator's selector string is interpreted.
type Strategy string

const (
	StrategyCSS   Strategy = "css"
	StrategyXPath Strategy = "xpath"
	StrategyText  Strategy = "text"
)

// Locator is an identifying pair (strategy, selector) used to find a UI
// element. Locators are defined once as package-level values and never
// mutated afterwards.
type Locator struct {
	Strategy Strategy
	Selector string
}

// ByCSS returns a locator that matches elements by CSS selector.
func ByCSS(selector string) Locator {
	return Locator{Strategy: StrategyCSS, Selector: selector}
}

// ByXPath returns a locator that matches elements by XPath expression.
func ByXPath(expr string) Locator {
	return Locator{Strategy: StrategyXPath, Selector: expr}
}

// ByText returns a locator that matches elements whose visible text
// contains the given string.
func ByText(text string) Locator {
	return Locator{Strategy: StrategyText, Selector: text}
}

// Validate checks that the locator pair is well-formed.
func (l Locator) Validate() error {
	switch l.Strategy {
	case StrategyCSS, StrategyXPath, StrategyText:
	default:
		return fmt.Errorf("unknown locator strategy: %q", l.Strategy)
	}
	if l.Selector == "" {
		return fmt.Errorf("empty selector for %s locator", l.Strategy)
	}
	return nil
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Selector)
}
