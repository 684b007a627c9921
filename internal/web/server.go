// Package web exposes a shared cube over HTTP: one cube.Cube instance,
// guarded by its own controller, reachable by any number of concurrent
// clients through /api/rotate and /api/snapshot.
package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ehrlich-b/cubesync/internal/cube"
	"github.com/gorilla/mux"
)

// requestTimeout bounds how long a single HTTP request will wait to be
// admitted by the cube's controller before giving up and returning 409.
const requestTimeout = 5 * time.Second

type Server struct {
	router  *mux.Router
	cube    *cube.Cube
	metrics *metrics
}

func NewServer(dimension int) *Server {
	m := newMetrics()
	s := &Server{
		router: mux.NewRouter(),
		cube: cube.Construct(dimension, cube.Hooks{
			AfterRotate: func(context.Context, cube.Face, int) error {
				m.rotations.Inc()
				return nil
			},
			AfterSnapshot: func(context.Context, string) error {
				m.snapshots.Inc()
				return nil
			},
		}),
		metrics: m,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rotate", s.handleRotate).Methods("POST")
	api.HandleFunc("/snapshot", s.handleSnapshot).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
