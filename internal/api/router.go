package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/balkashynov/pokerlog/internal/sessions"
)

// NewRouter wires the session endpoints
func NewRouter(svc *sessions.Service) *mux.Router {
	h := NewSessionHandler(svc)

	r := mux.NewRouter()
	r.Use(logRequests)

	s := r.PathPrefix("/poker-sessions").Subrouter()
	s.HandleFunc("", h.Create).Methods(http.MethodPost)
	s.HandleFunc("", h.List).Methods(http.MethodGet)
	// Static paths before {id} so they are not captured as identifiers
	s.HandleFunc("/active", h.Active).Methods(http.MethodGet)
	s.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	s.HandleFunc("/{id}/end", h.End).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)

	return r
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
