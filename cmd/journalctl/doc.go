// Package main provides journalctl, the CLI for the learning journal server.
//
// The journal is a small server-rendered blog with a single operator account.
// Anyone can read the entry list and detail pages; the operator logs in to
// write and edit entries, which are authored in markdown and rendered to
// HTML with syntax-highlighted code blocks.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: page and JSON endpoint handlers
//   - pkg/server/store: entry persistence interface and gorm implementation
//   - pkg/journal: journal operations (list, view, create, edit)
//   - pkg/render: markdown to HTML rendering
//   - pkg/authenticator: operator credential checking
//   - pkg/session: session cookies and signed auth tickets
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run database migrations
//	journalctl db migrate
//
//	# Start the server
//	journalctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - AUTH_USERNAME: operator username (default: admin)
//   - AUTH_PASSWORD: operator password, plain or bcrypt hash
//   - JOURNAL_SESSION_SECRET: secret for the session cookie
//   - JOURNAL_AUTH_SECRET: secret for the signed auth ticket
//   - PORT: server port (default: 5000)
//   - DEBUG: enable debug mode (default: true)
package main
