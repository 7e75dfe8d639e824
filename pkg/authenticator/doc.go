// Package authenticator implements the credential check gating privileged
// journal operations.
package authenticator
