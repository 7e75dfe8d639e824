package server

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"journal-in-go/pkg/authenticator"
	"journal-in-go/pkg/config"
	"journal-in-go/pkg/journal"
	"journal-in-go/pkg/session"
)

type Server struct {
	Config   *config.Config
	Router   *mux.Router
	DB       *gorm.DB
	Journal  *journal.Journal
	Gate     *authenticator.Gate
	Sessions *session.Manager
	srv      *http.Server
}

func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	j *journal.Journal,
	gate *authenticator.Gate,
	sessions *session.Manager,
) *Server {

	router := mux.NewRouter()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Config:   cfg,
		Router:   router,
		DB:       db,
		Journal:  j,
		Gate:     gate,
		Sessions: sessions,
		srv:      srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Used by tests that need
// to pick the port themselves.
func (s *Server) StartWithListener(l net.Listener) error {
	return s.srv.Serve(l)
}
