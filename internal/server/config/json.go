package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/flagx"
	"github.com/dmitrijs2005/gophportal/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "90s"-style strings or integer nanoseconds. Absent fields keep
// the value from earlier layers.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3PublicBaseURL              string         `json:"s3_public_base_url"`
	PresignExpiry                timex.Duration `json:"presign_expiry"`
	TenantsFile                  string         `json:"tenants_file"`
	LogLevel                     string         `json:"log_level"`
	HTTPRateLimit                int            `json:"http_rate_limit"`
	SeedAdminEmail               string         `json:"seed_admin_email"`
	SeedAdminPassword            string         `json:"seed_admin_password"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}

func parseJson(config *Config) error {
	path := flagx.ConfigFile(envPrefix + "CONFIG")
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setString(&config.TenantsFile, c.TenantsFile)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.SeedAdminEmail, c.SeedAdminEmail)
	setString(&config.SeedAdminPassword, c.SeedAdminPassword)

	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.PresignExpiry, c.PresignExpiry)
	if c.HTTPRateLimit != 0 {
		config.HTTPRateLimit = c.HTTPRateLimit
	}
	return nil
}
