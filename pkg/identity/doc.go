// Package identity carries the authenticated operator through a request's
// context.
package identity
