// Package server assembles the HTTP server: router, access logging and the
// collaborators the endpoint handlers need.
package server
