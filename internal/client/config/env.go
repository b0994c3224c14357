package config

import "github.com/dmitrijs2005/gophportal/internal/envx"

const envPrefix = "GOPHPORTAL_"

// parseEnv overlays values from .env and the process environment. A broken
// .env file panics like the other loaders.
func parseEnv(cfg *Config) {
	if err := envx.LoadDotenv(".env"); err != nil {
		panic(err)
	}
	envx.String(&cfg.ServerEndpointAddr, envPrefix+"SERVER_ADDR")
	envx.Duration(&cfg.OnlineCheckInterval, envPrefix+"ONLINE_CHECK_INTERVAL")
	envx.String(&cfg.LocalDBPath, envPrefix+"LOCAL_DB")
	envx.String(&cfg.ChartDir, envPrefix+"CHART_DIR")
	envx.String(&cfg.LogLevel, envPrefix+"CLIENT_LOG_LEVEL")
}
