// Package store defines the storage interfaces the journal core depends on,
// keeping lifecycle logic independent of storage technology.
package store
