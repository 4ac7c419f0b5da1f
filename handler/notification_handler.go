package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"janseva/models"
	"janseva/service"
)

// NotificationHandler handles HTTP requests for the notification log
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// ListNotifications handles GET /api/v1/notifications?role=worker
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	var role models.RecipientRole
	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		parsed, err := models.ParseRole(roleParam)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		role = parsed
	}

	notifications, err := h.service.List(role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	respondWithJSON(w, http.StatusOK, notifications)
}

// MarkRead handles POST /api/v1/notifications/{id}/read. Unknown ids
// succeed silently.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.MarkRead(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// SendNotification handles POST /api/v1/notifications, the direct dispatch
// operation for external collaborators.
func (h *NotificationHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req models.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "failed to parse request body")
		return
	}
	role, err := models.ParseRole(req.RecipientRole)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	if req.Message == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "message is required")
		return
	}

	if err := h.service.Send(role, req.Message, models.Severity(req.Severity), req.RelatedComplaintID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "dispatched"})
}
