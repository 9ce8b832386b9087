// Package config loads test configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/mstoykov/envconfig"
)

// Config carries everything the examples need to reach the application
// under test. Defaults point at the public demo endpoints.
type Config struct {
	BaseURL       string        `envconfig:"QA_BASE_URL" default:"https://www.bstackdemo.com/"`
	APIBaseURL    string        `envconfig:"QA_API_BASE_URL" default:"https://reqres.in"`
	APIKey        string        `envconfig:"QA_API_KEY" default:"reqres-free-v1"`
	Headless      bool          `envconfig:"QA_HEADLESS" default:"true"`
	Timeout       time.Duration `envconfig:"QA_TIMEOUT" default:"10s"`
	ScreenshotDir string        `envconfig:"QA_SCREENSHOT_DIR" default:"/tmp/screenshots"`
	// MySQLDSN enables run persistence when set.
	MySQLDSN string `envconfig:"QA_MYSQL_DSN"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}
