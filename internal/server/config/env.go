package config

import (
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophportal/internal/envx"
)

const envPrefix = "GOPHPORTAL_"

// parseEnv loads .env (if present) and overlays GOPHPORTAL_* variables.
func parseEnv(c *Config) error {
	if err := envx.LoadDotenv(".env"); err != nil {
		return err
	}

	envx.String(&c.EndpointAddrGRPC, envPrefix+"GRPC_ADDR")
	envx.String(&c.EndpointAddrHTTP, envPrefix+"HTTP_ADDR")
	envx.String(&c.DatabaseDSN, envPrefix+"DATABASE_DSN")
	envx.String(&c.SecretKey, envPrefix+"SECRET_KEY")
	envx.Duration(&c.AccessTokenValidityDuration, envPrefix+"ACCESS_TOKEN_TTL")
	envx.Duration(&c.RefreshTokenValidityDuration, envPrefix+"REFRESH_TOKEN_TTL")
	envx.String(&c.S3RootUser, envPrefix+"S3_USER")
	envx.String(&c.S3RootPassword, envPrefix+"S3_PASSWORD")
	envx.String(&c.S3Bucket, envPrefix+"S3_BUCKET")
	envx.String(&c.S3Region, envPrefix+"S3_REGION")
	envx.String(&c.S3BaseEndpoint, envPrefix+"S3_ENDPOINT")
	envx.String(&c.S3PublicBaseURL, envPrefix+"S3_PUBLIC_BASE_URL")
	envx.Duration(&c.PresignExpiry, envPrefix+"PRESIGN_EXPIRY")
	envx.String(&c.TenantsFile, envPrefix+"TENANTS_FILE")
	envx.String(&c.LogLevel, envPrefix+"LOG_LEVEL")
	envx.String(&c.SeedAdminEmail, envPrefix+"SEED_ADMIN_EMAIL")
	envx.String(&c.SeedAdminPassword, envPrefix+"SEED_ADMIN_PASSWORD")

	if v := os.Getenv(envPrefix + "HTTP_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HTTPRateLimit = n
		}
	}
	return nil
}
