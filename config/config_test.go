package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RFQ_TARGET_URL", "")
	t.Setenv("DEMO_MODE", "")
	t.Setenv("DEMO_FALLBACK", "")
	t.Setenv("MAX_RETRIES", "")

	cfg := Load()

	assert.Equal(t, defaultTargetURL, cfg.TargetURL)
	assert.Equal(t, "https://sourcing.alibaba.com", cfg.BaseURL)
	assert.False(t, cfg.DemoMode)
	assert.True(t, cfg.DemoFallback)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("DEMO_FALLBACK", "0")
	t.Setenv("MAX_RETRIES", "3")
	t.Setenv("OUTPUT_DIR", "/tmp/rfq")

	cfg := Load()

	assert.True(t, cfg.DemoMode)
	assert.False(t, cfg.DemoFallback)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "/tmp/rfq", cfg.OutputDir)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("DEMO_FALLBACK", "maybe")
	t.Setenv("MAX_RETRIES", "-2")

	cfg := Load()

	assert.True(t, cfg.DemoFallback)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "rfq", PostgresSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=rfq sslmode=disable", cfg.DSN())
}
