package endpoints

import (
	"embed"
	"io/fs"
	"net/http"

	"journal-in-go/pkg/server"
)

//go:embed static/css
var staticFiles embed.FS

// RegisterStaticFiles registers static file serving for CSS.
// Static files are embedded in the binary.
func RegisterStaticFiles(srv *server.Server) {
	// Create sub-filesystem rooted at "static"
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve /css/* from embedded static/css/
	cssFS, _ := fs.Sub(staticFS, "css")
	srv.Router.PathPrefix("/css/").Handler(
		http.StripPrefix("/css/", http.FileServer(http.FS(cssFS))),
	)

	// Serve favicon.ico (return 404 if not present)
	srv.Router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}
