// Package config loads runtime configuration for the tunnelpanel CLI.
//
// # Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed TUNNEL_, optionally seeded from
//     .env.local and .env in the working directory.
//  3. A JSON or YAML file selected with -c or -config.
//  4. Command-line flags.
//
// # Flags
//
//	-a string   API base URL (default https://bdtunnel.com/api)
//	-s string   session database path
//	-t int      request timeout in seconds (default 15)
//	-p int      package id to preselect on the signup screen
//	-l string   log level
//
// # Environment
//
//	TUNNEL_API_BASE_URL, TUNNEL_SESSION_BACKEND, TUNNEL_SESSION_DB_PATH,
//	TUNNEL_REDIS_ADDR, TUNNEL_REDIS_KEY_PREFIX, TUNNEL_REQUEST_TIMEOUT,
//	TUNNEL_REDIRECT_DELAY, TUNNEL_RATE_LIMIT, TUNNEL_LOG_LEVEL,
//	TUNNEL_LOG_FORMAT, TUNNEL_LOG_BACKEND, TUNNEL_PACKAGE_ID
//
// Durations in the environment use Go syntax ("20s").
//
// # File
//
// Files ending in .yaml or .yml are read as YAML, anything else as JSON.
// Durations may be strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://bdtunnel.com/api",
//	  "session_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "request_timeout": "20s"
//	}
package config
