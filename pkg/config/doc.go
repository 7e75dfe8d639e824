// Package config provides configuration management for the journal server.
//
// Configuration is loaded from environment variables and an optional
// configuration file, with environment variables taking precedence.
//
// # Key Configuration Options
//
//   - DATABASE_URL: Postgres connection string
//   - AUTH_USERNAME / AUTH_PASSWORD: The single operator credential pair
//   - JOURNAL_SESSION_SECRET: Session cookie signing secret
//   - JOURNAL_AUTH_SECRET: Identity ticket signing secret
//   - PORT / BIND_ADDRESS: Server listen address
//   - DEBUG: Verbose logging and template hot-reload
package config
