// Command smoke runs the end-to-end example scenario against the configured
// endpoints: a storefront search through the page objects and a users API
// round trip through the API test helpers.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"dev/bravebird/qa-automation-go/pkg/apitest"
	"dev/bravebird/qa-automation-go/pkg/browser"
	"dev/bravebird/qa-automation-go/pkg/config"
	"dev/bravebird/qa-automation-go/pkg/pages"
	"dev/bravebird/qa-automation-go/pkg/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	rec := report.NewRecorder("smoke")

	runAPIChecks(cfg, rec)

	// Browser checks need a local Chrome; opt in explicitly.
	if os.Getenv("QA_SMOKE_BROWSER") != "" {
		runBrowserChecks(cfg, rec)
	}

	run := rec.Finish()
	persist(cfg, run, rec.Checks())
	printSummary(run, rec)

	if run.Status == report.StatusFailed {
		os.Exit(1)
	}
}

func runAPIChecks(cfg config.Config, rec *report.Recorder) {
	client := apitest.NewClient(cfg.APIBaseURL)
	if cfg.APIKey != "" {
		client.SetHeader("x-api-key", cfg.APIKey)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	var resp *apitest.Response
	err := rec.Step("GET /api/users?page=2", func() error {
		var err error
		resp, err = client.Get(ctx, "/api/users", url.Values{"page": {"2"}})
		return err
	})
	if err != nil {
		return
	}

	rec.Step("status is 200", func() error { return resp.AssertStatusCode(200) })
	rec.Step("body has data key", func() error { return resp.AssertContainsKey("data") })
	rec.Step("page is 2", func() error { return resp.AssertKeyValue("page", 2) })
	rec.Step("body matches users schema", func() error { return resp.AssertJSONSchema(apitest.UsersListSchema) })
	rec.Step("responds within 5s", func() error { return resp.AssertResponseTime(5000) })
}

func runBrowserChecks(cfg config.Config, rec *report.Recorder) {
	var session *browser.Session
	err := rec.Step("launch browser", func() error {
		var err error
		session, err = browser.NewSession(browser.SessionConfig{
			Headless: cfg.Headless,
			Timeout:  cfg.Timeout,
		})
		return err
	})
	if err != nil {
		return
	}
	defer session.Close()

	driver := session.Driver()
	landing := pages.NewLandingPage(driver, cfg.BaseURL)

	failed := false
	fail := func(err error) {
		if err != nil {
			failed = true
		}
	}

	fail(rec.Step("load landing page", landing.Load))
	fail(rec.Step("landing page title", landing.VerifyLoaded))
	fail(rec.Step("search for Selenium Python", func() error {
		return landing.SearchFor("Selenium Python")
	}))
	fail(rec.Step("results view title", func() error {
		results := pages.NewSearchResultsPage(driver)
		if _, err := results.Info(); err != nil {
			return err
		}
		return landing.VerifyLoaded()
	}))

	if failed {
		path := filepath.Join(cfg.ScreenshotDir, fmt.Sprintf("smoke_%d.png", time.Now().Unix()))
		if err := driver.Screenshot(path); err != nil {
			logrus.Warnf("Failed to capture screenshot: %v", err)
		} else {
			logrus.Infof("Screenshot saved to %s", path)
		}
	}
}

func persist(cfg config.Config, run report.Run, checks []report.Check) {
	if cfg.MySQLDSN == "" {
		return
	}
	store, err := report.NewStore(cfg.MySQLDSN)
	if err != nil {
		logrus.Warnf("Failed to connect to results database: %v", err)
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.SaveRun(ctx, run, checks); err != nil {
		logrus.Warnf("Failed to persist run: %v", err)
	}
}

func printSummary(run report.Run, rec *report.Recorder) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	for _, c := range rec.Checks() {
		if c.Status == report.StatusFailed {
			fmt.Printf("  %s %s (%dms): %s\n", fail("FAIL"), c.Name, c.DurationMillis, c.ErrorMessage)
		} else {
			fmt.Printf("  %s %s (%dms)\n", pass("PASS"), c.Name, c.DurationMillis)
		}
	}

	s := rec.Summarize()
	verdict := pass("PASSED")
	if run.Status == report.StatusFailed {
		verdict = fail("FAILED")
	}
	fmt.Printf("\n%s run %s: %d checks, %d passed, %d failed\n",
		verdict, run.ID, s.Total, s.Passed, s.Failed)
}
