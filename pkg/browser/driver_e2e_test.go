//go:build e2e

package browser_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dev/bravebird/qa-automation-go/pkg/browser"
	"dev/bravebird/qa-automation-go/pkg/demosite"
)

func newDriver(t *testing.T) (*browser.Driver, string) {
	t.Helper()

	server := httptest.NewServer(demosite.Handler())
	t.Cleanup(server.Close)

	session, err := browser.NewSession(browser.SessionConfig{Headless: true, Timeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	driver := session.Driver()
	require.NoError(t, driver.Navigate(server.URL+"/"))
	return driver, server.URL
}

func TestDriverFind(t *testing.T) {
	driver, _ := newDriver(t)

	el, err := driver.Find(browser.ByXPath("//*[@placeholder='Search']"))
	require.NoError(t, err)
	require.NotNil(t, el)

	_, err = driver.Find(browser.ByCSS("#does-not-exist"))
	require.Error(t, err)
	assert.ErrorIs(t, err, browser.ErrElementNotFound)
}

func TestDriverVisibility(t *testing.T) {
	driver, _ := newDriver(t)

	pres, err := driver.Visibility(browser.ByCSS("header"), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, browser.Visible, pres)

	// Absence is reported as a value, not an error.
	pres, err = driver.Visibility(browser.ByCSS(".does-not-exist"), time.Second)
	require.NoError(t, err)
	assert.Equal(t, browser.Absent, pres)

	// Zero timeout is a valid, immediately-expiring window.
	pres, err = driver.Visibility(browser.ByCSS(".does-not-exist"), 0)
	require.NoError(t, err)
	assert.Equal(t, browser.Absent, pres)
}

func TestDriverNavigateAndTitle(t *testing.T) {
	driver, base := newDriver(t)

	title, err := driver.Title()
	require.NoError(t, err)
	assert.Contains(t, title, "StackDemo")

	url, err := driver.CurrentURL()
	require.NoError(t, err)
	assert.Contains(t, url, base)

	require.NoError(t, driver.Refresh())
}

func TestDriverFindAll(t *testing.T) {
	driver, base := newDriver(t)

	require.NoError(t, driver.Navigate(base+"/search?q=iPhone"))

	items, err := driver.FindAll(browser.ByCSS(".result-item"))
	require.NoError(t, err)
	assert.Len(t, items, 3)

	none, err := driver.FindAll(browser.ByCSS(".does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, none)
}
