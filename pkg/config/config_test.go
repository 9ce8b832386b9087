package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.bstackdemo.com/", cfg.BaseURL)
	assert.Equal(t, "https://reqres.in", cfg.APIBaseURL)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.MySQLDSN)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("QA_BASE_URL", "http://127.0.0.1:8080/")
	t.Setenv("QA_HEADLESS", "false")
	t.Setenv("QA_TIMEOUT", "30s")
	t.Setenv("QA_MYSQL_DSN", "qa:qa@tcp(localhost:3306)/qa?parseTime=true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080/", cfg.BaseURL)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "qa:qa@tcp(localhost:3306)/qa?parseTime=true", cfg.MySQLDSN)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("QA_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
