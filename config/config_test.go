package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEmailEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "ENVIRONMENT", "STATIC_DIR",
		"RESEND_API_KEY", "RESEND_FROM_EMAIL", "EMAIL_FROM_NAME", "RESEND_TO_EMAIL",
		"EMAIL_TEST_MODE", "SEND_TIMEOUT", "RATE_LIMIT_PER_MINUTE", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEmailEnv(t)

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "onboarding@resend.dev", cfg.EmailFrom)
	assert.Equal(t, "delivered@resend.dev", cfg.EmailTo)
	assert.True(t, cfg.EmailTestMode)
	assert.Equal(t, 10*time.Second, cfg.SendTimeout)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEmailEnv(t)
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("RESEND_TO_EMAIL", "leads@mvpstudio.dev")
	t.Setenv("EMAIL_TEST_MODE", "false")
	t.Setenv("SEND_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "20")
	t.Setenv("ALLOWED_ORIGINS", "https://mvpstudio.dev,https://www.mvpstudio.dev")

	cfg := Load()
	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "re_test_key", cfg.ResendAPIKey)
	assert.Equal(t, "leads@mvpstudio.dev", cfg.EmailTo)
	assert.False(t, cfg.EmailTestMode)
	assert.Equal(t, 3*time.Second, cfg.SendTimeout)
	assert.Equal(t, 20, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"https://mvpstudio.dev", "https://www.mvpstudio.dev"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEmailEnv(t)
	t.Setenv("EMAIL_TEST_MODE", "maybe")
	t.Setenv("SEND_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-3")

	cfg := Load()
	assert.True(t, cfg.EmailTestMode)
	assert.Equal(t, 10*time.Second, cfg.SendTimeout)
	assert.Equal(t, 5, cfg.RateLimitPerMinute)
}

func TestGetEnvBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "1": true, "yes": true, "on": true, "TRUE": true,
		"false": false, "0": false, "no": false, "off": false, "FALSE": false,
	}
	for value, expected := range cases {
		t.Setenv("TEST_BOOL", value)
		assert.Equal(t, expected, getEnvBool("TEST_BOOL", !expected), "value %q", value)
	}
}
