package config

import (
	"os"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
)

// parseEnv overlays secrets and the store location from the environment.
// A nil lookup reads the process environment.
func parseEnv(cfg *Config, lookup flagx.LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	flagx.OverlayEnv(lookup, map[string]*string{
		"DECK_STORE_URL":     &cfg.StoreURL,
		"DECK_STORE_KEY":     &cfg.StoreKey,
		"DECK_GEMINI_KEY":    &cfg.GeneratorKey,
		"DECK_S3_ACCESS_KEY": &cfg.S3AccessKey,
		"DECK_S3_SECRET_KEY": &cfg.S3SecretKey,
	})
}
