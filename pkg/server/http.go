package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// newRouter wires the meta endpoints and the static file tree.
//
//	/-/status returns JSON about the running server
//	/-/list   returns the names at the root of the served directory
//	/*        standard file serving: exact bytes with inferred content
//	          type, index.html resolution and generated listings for
//	          directories, 404 otherwise
func (s *DocServer) newRouter() *mux.Router {
	meta := &metaHandler{
		server: s,
	}

	router := mux.NewRouter()

	m := router.PathPrefix("/-").Subrouter()

	router.Use(logRequest)

	m.HandleFunc("/status", meta.status).Methods("GET")
	m.HandleFunc("/list", meta.list).Methods("GET")

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.manager.Dir)))

	return router
}
