// Package db provides database connection utilities for the journal server.
package db
