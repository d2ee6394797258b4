package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// KeyRequest is the body of POST /api/key.
type KeyRequest struct {
	Key string `json:"key"`
}

// SwipeRequest is the body of POST /api/swipe.
type SwipeRequest struct {
	StartX float64 `json:"startX"`
	EndX   float64 `json:"endX"`
}

// ActionResponse reports whether a request changed anything, with the
// resulting state.
type ActionResponse struct {
	Handled bool      `json:"handled"`
	State   StateView `json:"state"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GET /api/deck
func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewDeckView(s.deck))
}

// GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.hub.Snapshot(r.Context())
	if err != nil {
		s.writeHubError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.view(snap))
}

// POST /api/next
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(c *presentation.Controller) bool {
		c.Next()
		return true
	})
}

// POST /api/previous
func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(c *presentation.Controller) bool {
		c.Previous()
		return true
	})
}

// POST /api/goto/{index}
func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid slide index")
		return
	}

	ok := false
	snap, err := s.hub.Do(r.Context(), func(c *presentation.Controller) { ok = c.GoTo(index) })
	if err != nil {
		s.writeHubError(w, r, err)
		return
	}
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "slide index out of range")
		return
	}
	writeJSON(w, http.StatusOK, ActionResponse{Handled: true, State: s.view(snap)})
}

// POST /api/tab/{index}
func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tab index")
		return
	}

	ok := false
	snap, err := s.hub.Do(r.Context(), func(c *presentation.Controller) { ok = c.SelectTab(index) })
	if err != nil {
		s.writeHubError(w, r, err)
		return
	}
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "tab index out of range")
		return
	}
	writeJSON(w, http.StatusOK, ActionResponse{Handled: true, State: s.view(snap)})
}

// POST /api/key
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key := presentation.ParseKey(req.Key)
	s.act(w, r, func(c *presentation.Controller) bool { return c.HandleKey(key) })
}

// POST /api/swipe
func (s *Server) handleSwipe(w http.ResponseWriter, r *http.Request) {
	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.act(w, r, func(c *presentation.Controller) bool { return c.HandleSwipe(req.StartX, req.EndX) })
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"slides":  s.deck.Len(),
		"clients": s.hub.Subscribers(),
	})
}

func (s *Server) act(w http.ResponseWriter, r *http.Request, fn func(*presentation.Controller) bool) {
	handled := false
	snap, err := s.hub.Do(r.Context(), func(c *presentation.Controller) { handled = fn(c) })
	if err != nil {
		s.writeHubError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ActionResponse{Handled: handled, State: s.view(snap)})
}

func (s *Server) writeHubError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, presentation.ErrHubClosed) {
		writeError(w, http.StatusServiceUnavailable, "presentation has ended")
		return
	}
	s.logger.Warn(r.Context(), "request failed", ports.F("path", r.URL.Path), ports.Err(err))
	writeError(w, http.StatusServiceUnavailable, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
