// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, then GOPHPORTAL_* variables.
//  3. Optional JSON file (see parseJson) selected via -c/-config or
//     GOPHPORTAL_CLIENT_CONFIG.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the portal gRPC endpoint
//	-i int      online status check interval (seconds)
//	-d string   local SQLite database path
//	-o string   directory charts are written to
//	-v string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "local_db_path": "portal.db",
//	  "chart_dir": "charts",
//	  "log_level": "info"
//	}
package config
