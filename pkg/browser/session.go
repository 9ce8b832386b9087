package browser

import (
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds find and wait operations when no explicit timeout
// is given.
const DefaultTimeout = 10 * time.Second

// SessionConfig controls how the browser is launched.
type SessionConfig struct {
	Headless  bool
	ChromeBin string
	// Timeout is the default find/wait timeout for drivers created from
	// this session. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Session owns one launched browser and its page. Callers construct a
// session on entry and must Close it on every exit path; sessions are never
// shared process-wide.
type Session struct {
	browser   *rod.Browser
	page      *rod.Page
	timeout   time.Duration
	createdAt time.Time
}

// NewSession launches a browser and opens a blank page.
func NewSession(cfg SessionConfig) (*Session, error) {
	l := launcher.New()

	// Use CHROME_BIN if set (Docker environment)
	bin := cfg.ChromeBin
	if bin == "" {
		bin = os.Getenv("CHROME_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	l = l.Headless(cfg.Headless)

	// Chrome flags for Docker compatibility
	l = l.Set("no-sandbox")
	l = l.Set("disable-gpu")
	l = l.Set("disable-dev-shm-usage")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(url)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Session{
		browser:   b,
		page:      page,
		timeout:   timeout,
		createdAt: time.Now(),
	}, nil
}

// Driver returns the capability surface page objects use.
func (s *Session) Driver() *Driver {
	return NewDriver(s.page, s.timeout)
}

// Close shuts the browser down.
func (s *Session) Close() error {
	if s.browser == nil {
		return nil
	}
	if err := s.browser.Close(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return nil
}
