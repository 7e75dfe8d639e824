// Package journal implements the entry lifecycle: authorization rules for
// creating, viewing and editing entries, and the detail and edit
// representations handed to the HTTP surface.
package journal
