package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
	"github.com/dmitrijs2005/deckkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	StoreURL            string         `json:"store_url"`
	StoreKey            string         `json:"store_key"`
	HealthAddr          string         `json:"health_addr"`
	GeneratorKey        string         `json:"generator_key"`
	GeneratorModel      string         `json:"generator_model"`
	GeneratorURL        string         `json:"generator_url"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	CacheDSN            string         `json:"cache_dsn"`
	ExportDir           string         `json:"export_dir"`
	LogLevel            string         `json:"log_level"`
	S3Region            string         `json:"s3_region"`
	S3Endpoint          string         `json:"s3_endpoint"`
	S3AccessKey         string         `json:"s3_access_key"`
	S3SecretKey         string         `json:"s3_secret_key"`
	S3Bucket            string         `json:"s3_bucket"`
	S3LinkTTL           timex.Duration `json:"s3_link_ttl"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays cfg with the non-empty values of the file named by -c
// or -config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StoreURL, jc.StoreURL)
	setString(&cfg.StoreKey, jc.StoreKey)
	setString(&cfg.HealthAddr, jc.HealthAddr)
	setString(&cfg.GeneratorKey, jc.GeneratorKey)
	setString(&cfg.GeneratorModel, jc.GeneratorModel)
	setString(&cfg.GeneratorURL, jc.GeneratorURL)
	setString(&cfg.CacheDSN, jc.CacheDSN)
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Bucket, jc.S3Bucket)

	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.S3LinkTTL.Duration > 0 {
		cfg.S3LinkTTL = jc.S3LinkTTL.Duration
	}
}
