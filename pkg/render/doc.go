// Package render converts raw entry markup to HTML.
//
// The renderer is a thin wrapper over goldmark with the highlighting
// extension, producing fenced code blocks wrapped in a codehilite container
// so existing stylesheets keep working.
package render
