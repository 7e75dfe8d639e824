package endpoints

import (
	"errors"
	"net/http"

	"journal-in-go/pkg/authenticator"
	"journal-in-go/pkg/server"
	"journal-in-go/pkg/session"
)

type loginPage struct {
	Error    string
	Username string
}

// RegisterAuthEndpoints registers login and logout.
func RegisterAuthEndpoints(srv *server.Server, templates *Templates) {
	router := srv.Router

	router.HandleFunc("/login", handleLoginForm(templates)).Methods("GET")
	router.HandleFunc("/login", handleLogin(srv.Gate, srv.Sessions, templates)).Methods("POST")
	router.HandleFunc("/logout", handleLogout(srv.Sessions)).Methods("GET", "POST")
}

func handleLoginForm(templates *Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates.Render(w, "login.html.tmpl", loginPage{})
	}
}

func handleLogin(gate *authenticator.Gate, sessions *session.Manager, templates *Templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		ok, err := gate.Authenticate(username, password)
		if err != nil {
			// validation failures are shown on the form, nothing else
			// escapes the login page
			errMsg := "Login Failed"
			if errors.Is(err, authenticator.ErrMissingCredentials) {
				errMsg = err.Error()
			}
			templates.Render(w, "login.html.tmpl", loginPage{Error: errMsg, Username: username})
			return
		}

		if !ok {
			templates.Render(w, "login.html.tmpl", loginPage{Error: "Login Failed", Username: username})
			return
		}

		if err := sessions.Establish(w, r, username); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func handleLogout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// clearing is idempotent, a failed save only means the cookie
		// survives until it fails validation
		_ = sessions.Clear(w, r)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
