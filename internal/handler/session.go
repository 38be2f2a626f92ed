package handler

import (
	"errors"
	"net/http"

	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

// SessionHandler handles HTTP requests for widget sessions.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleStart handles POST /api/v1/session requests.
func (h *SessionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req model.SessionStartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Start(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleEvent handles POST /api/v1/session/events requests.
func (h *SessionHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SessionEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Apply(claims, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedEvent):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
