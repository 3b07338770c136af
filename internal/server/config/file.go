package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/motorpool/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for decoding config files. Durations use
// timex.Duration so both "24h" and integer nanoseconds are accepted.
type fileConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	LogFormat                   string         `json:"log_format" yaml:"log_format"`
	DBConnectRetries            *uint64        `json:"db_connect_retries" yaml:"db_connect_retries"`
	DBConnectMaxDelay           timex.Duration `json:"db_connect_max_delay" yaml:"db_connect_max_delay"`
	ShutdownTimeout             timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// parseFile overlays the values present in the file at path onto config.
// The format is chosen by extension: .yaml and .yml are YAML, anything
// else is JSON. Keys absent from the file leave config untouched.
func parseFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fc.apply(config)
	return nil
}

func (fc *fileConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, fc.DatabaseDSN)
	setString(&config.SecretKey, fc.SecretKey)
	setString(&config.LogFormat, fc.LogFormat)

	if fc.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if fc.DBConnectRetries != nil {
		config.DBConnectRetries = *fc.DBConnectRetries
	}
	if fc.DBConnectMaxDelay.Duration > 0 {
		config.DBConnectMaxDelay = fc.DBConnectMaxDelay.Duration
	}
	if fc.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
