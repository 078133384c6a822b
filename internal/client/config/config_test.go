package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.StoreURL)
	assert.Equal(t, "gemini-2.0-flash", c.GeneratorModel)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "deck.db", c.CacheDSN)
	assert.Equal(t, 24*time.Hour, c.S3LinkTTL)
	assert.Empty(t, c.S3Bucket)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv("DECK_STORE_URL", "")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.StoreURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("DECK_STORE_URL", "http://env:1")
	t.Setenv("DECK_STORE_KEY", "env-key")
	os.Args = []string{"testbin", "-u", "http://flag:2"}

	cfg := LoadConfig()
	assert.Equal(t, "http://flag:2", cfg.StoreURL)
	assert.Equal(t, "env-key", cfg.StoreKey)
}

func TestParseEnv(t *testing.T) {
	env := map[string]string{
		"DECK_STORE_KEY":     "anon",
		"DECK_GEMINI_KEY":    "gem",
		"DECK_S3_SECRET_KEY": "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &Config{StoreURL: "keep", S3SecretKey: "keep-secret"}
	parseEnv(cfg, lookup)

	assert.Equal(t, "keep", cfg.StoreURL)
	assert.Equal(t, "anon", cfg.StoreKey)
	assert.Equal(t, "gem", cfg.GeneratorKey)
	assert.Equal(t, "keep-secret", cfg.S3SecretKey, "empty variables do not override")
}
