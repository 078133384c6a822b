// Package config loads runtime configuration for the deck client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables DECK_STORE_URL, DECK_STORE_KEY, DECK_GEMINI_KEY,
//     DECK_S3_ACCESS_KEY and DECK_S3_SECRET_KEY.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the presentations store
//	-k string   store API key
//	-h string   host:port of the store's gRPC health endpoint
//	-g string   Gemini API key
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "store_url": "http://127.0.0.1:8080",
//	  "store_key": "...",
//	  "health_addr": "127.0.0.1:50051",
//	  "generator_key": "...",
//	  "generator_model": "gemini-2.0-flash",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "cache_dsn": "deck.db",
//	  "export_dir": "exports",
//	  "s3_bucket": "decks"
//	}
package config
