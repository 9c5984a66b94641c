// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, config.yaml, .env). It
// provides type-safe access to the server and database settings while
// keeping configuration details separate from business logic.
package config
