package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
	"github.com/dmitrijs2005/deckkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept both "30s" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	SecretKey        string         `json:"secret_key"`
	AllowAnonWrites  *bool          `json:"allow_anon_writes"`
	ListCacheTTL     timex.Duration `json:"list_cache_ttl"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays config with the values present in the file named by
// -c or -config. Missing keys keep their current value. It panics if the
// file cannot be read or parsed.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AllowAnonWrites != nil {
		config.AllowAnonWrites = *c.AllowAnonWrites
	}
	if c.ListCacheTTL.Duration > 0 {
		config.ListCacheTTL = c.ListCacheTTL.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
