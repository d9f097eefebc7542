package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/balkashynov/pokerlog/internal/models"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

// SessionHandler serves the /poker-sessions endpoints
type SessionHandler struct {
	svc *sessions.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc *sessions.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Create handles POST /poker-sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := h.svc.CreateSession(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// List handles GET /poker-sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListSessions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

// Active handles GET /poker-sessions/active
func (h *SessionHandler) Active(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ActiveSessions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(list))
}

// Stats handles GET /poker-sessions/stats
func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Get handles GET /poker-sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// End handles PUT /poker-sessions/{id}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := h.svc.EndSession(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Update handles PUT /poker-sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := h.svc.UpdateSession(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Delete handles DELETE /poker-sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.DeleteSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// decodeOptional decodes a JSON body, treating an empty body as {}
func decodeOptional(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func nonNil(list []models.PokerSession) []models.PokerSession {
	if list == nil {
		return []models.PokerSession{}
	}
	return list
}

func writeServiceError(w http.ResponseWriter, err error) {
	var storeErr *sessions.StoreError
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		writeError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, sessions.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &storeErr):
		log.Printf("store failure: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		log.Printf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
