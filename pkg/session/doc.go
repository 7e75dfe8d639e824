// Package session issues, validates and clears the operator's signed cookie
// session and the identity ticket it carries.
package session
