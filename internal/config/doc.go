// Package config manages application configuration for the members API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: relational database driver and pool settings
//   - RateLimitConfig: per-client request rate limits
//   - TelemetryConfig: OpenTelemetry trace export settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT                  - HTTP server port (default: 8080)
//	SERVER_ENV                   - development, production, or test
//	CORS_ALLOWED_ORIGINS         - comma-separated allowed origins
//	DB_DRIVER                    - postgres or sqlite
//	DATABASE_URL                 - database DSN
//	RATE_LIMIT_PER_SECOND        - sustained requests per second per client
//	RATE_LIMIT_BURST             - burst allowance per client
//	OTEL_ENABLED                 - enable trace export
//	OTEL_EXPORTER_OTLP_ENDPOINT  - OTLP collector endpoint
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
