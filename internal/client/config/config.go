package config

import "time"

// Config holds runtime settings for the deck client.
type Config struct {
	StoreURL   string
	StoreKey   string
	HealthAddr string

	GeneratorKey   string
	GeneratorModel string
	GeneratorURL   string

	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration

	CacheDSN  string
	ExportDir string
	LogLevel  string

	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3LinkTTL   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreURL = "http://127.0.0.1:8080"
	c.GeneratorModel = "gemini-2.0-flash"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.CacheDSN = "deck.db"
	c.ExportDir = "exports"
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
	c.S3LinkTTL = 24 * time.Hour
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg, nil)
	parseFlags(cfg)
	return cfg
}
