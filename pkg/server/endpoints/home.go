package endpoints

import (
	"net/http"

	"journal-in-go/pkg/identity"
	"journal-in-go/pkg/journal"
	"journal-in-go/pkg/server"
)

type listPage struct {
	Entries  []journal.Summary
	LoggedIn bool
}

// RegisterHomeEndpoint registers the public listing page.
func RegisterHomeEndpoint(srv *server.Server, templates *Templates) {
	srv.Router.HandleFunc("/", handleHome(srv.Journal, templates)).Methods("GET")
}

func handleHome(j *journal.Journal, templates *Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := j.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		_, loggedIn := identity.Get(r.Context())
		templates.Render(w, "list.html.tmpl", listPage{
			Entries:  entries,
			LoggedIn: loggedIn,
		})
	}
}
