package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"journal-in-go/pkg/identity"
	"journal-in-go/pkg/journal"
	"journal-in-go/pkg/server"
	"journal-in-go/pkg/server/store"
)

type detailPage struct {
	Entry    *journal.Detail
	LoggedIn bool
}

// RegisterEntryEndpoints registers entry creation, the public detail page and
// the JSON edit endpoints.
func RegisterEntryEndpoints(srv *server.Server, templates *Templates) {
	router := srv.Router
	j := srv.Journal

	// POST /add - create an entry, redirect home
	router.HandleFunc("/add", handleAddEntry(j)).Methods("POST")

	// GET /detail/{id} - public detail page
	router.HandleFunc("/detail/{id:[0-9]+}", handleDetailEntry(j, templates)).Methods("GET")

	// GET /edit?id=N - edit representation as JSON
	// POST /edit - apply an edit, detail representation as JSON
	router.HandleFunc("/edit", handleEditForm(j)).Methods("GET")
	router.HandleFunc("/edit", handleApplyEdit(j)).Methods("POST")
}

// formField distinguishes a missing form field (nil) from an empty one. The
// store treats the two differently: missing becomes NULL and is rejected by
// the table constraints.
func formField(r *http.Request, name string) *string {
	if values, ok := r.Form[name]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

func handleAddEntry(j *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		_, err := j.Create(id, formField(r, "title"), formField(r, "text"))
		if err != nil {
			var perr *journal.PersistenceError
			if errors.As(err, &perr) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func handleDetailEntry(j *journal.Journal, templates *Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		entry, err := j.View(entryID)
		if err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		_, loggedIn := identity.Get(r.Context())
		templates.Render(w, "detail.html.tmpl", detailPage{
			Entry:    entry,
			LoggedIn: loggedIn,
		})
	}
}

func handleEditForm(j *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		entryID, err := strconv.Atoi(r.URL.Query().Get("id"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		form, err := j.BeginEdit(id, entryID)
		if err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, form)
	}
}

func handleApplyEdit(j *journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		entryID, err := strconv.Atoi(r.FormValue("id"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		detail, err := j.ApplyEdit(id, entryID, formField(r, "title"), formField(r, "text"))
		if err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				http.NotFound(w, r)
				return
			}
			var perr *journal.PersistenceError
			if errors.As(err, &perr) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondWithJSON(w, http.StatusOK, detail)
	}
}
