package endpoints

import (
	"journal-in-go/pkg/server"
	"journal-in-go/pkg/server/middleware"
)

// RegisterAll registers the full journal surface on the server: session
// middleware, the HTML pages, the JSON edit endpoints and static assets.
func RegisterAll(srv *server.Server) {
	srv.Router.Use(middleware.NewSessionIdentity(srv.Sessions).Middleware)

	templates := NewTemplates(srv.Config.Debug)

	RegisterHomeEndpoint(srv, templates)
	RegisterEntryEndpoints(srv, templates)
	RegisterAuthEndpoints(srv, templates)

	// Static files
	RegisterStaticFiles(srv)
}
