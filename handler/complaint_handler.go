package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"janseva/middleware"
	"janseva/models"
	"janseva/service"
)

// ComplaintHandler handles HTTP requests for the complaint lifecycle
type ComplaintHandler struct {
	service *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(svc *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: svc}
}

// CreateComplaint handles POST /api/v1/complaints
func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "failed to parse request body")
		return
	}
	if req.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "title is required")
		return
	}
	if req.Description == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "description is required")
		return
	}
	if req.Category == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "category is required")
		return
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "coordinates out of range")
		return
	}

	complaint, err := h.service.CreateComplaint(&req)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	respondWithJSON(w, http.StatusCreated, complaint)
}

// ListComplaints handles GET /api/v1/complaints
func (h *ComplaintHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.service.ListComplaints()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, complaints)
}

// GetComplaint handles GET /api/v1/complaints/{id}
func (h *ComplaintHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	complaint, err := h.service.GetComplaintByID(id)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// GetTimeline handles GET /api/v1/complaints/{id}/timeline
func (h *ComplaintHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	timeline, err := h.service.GetTimeline(id)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, timeline)
}

// UpdateStatus handles POST /api/v1/complaints/{id}/status, the generic
// lifecycle transition. The target status is normalized before hitting the
// state machine.
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "failed to parse request body")
		return
	}

	target, err := models.ParseStatus(req.NewStatus)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	payload := &models.TransitionPayload{
		WorkerID:      req.WorkerID,
		WorkerName:    req.WorkerName,
		WorkDeadline:  req.WorkDeadline,
		ProofImage:    req.ProofImage,
		WorkerRemarks: req.WorkerRemarks,
	}
	if req.ProofLatitude != nil && req.ProofLongitude != nil {
		payload.ProofLocation = &models.GeoPoint{
			Latitude:  *req.ProofLatitude,
			Longitude: *req.ProofLongitude,
		}
	}

	complaint, err := h.service.UpdateComplaintStatus(id, target, payload)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// RejectWork handles POST /api/v1/complaints/{id}/reject — the officer
// rejection of submitted proof-of-work.
func (h *ComplaintHandler) RejectWork(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.RejectWorkRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	complaint, err := h.service.RejectWork(id, req.Reason)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// FileFakeReport handles POST /api/v1/complaints/{id}/fake-report — the
// citizen integrity report against a completed resolution.
func (h *ComplaintHandler) FileFakeReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.FakeReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "failed to parse request body")
		return
	}
	if req.Reason == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "reason is required")
		return
	}

	reportedBy := middleware.ActorID(r)
	if reportedBy == "" {
		reportedBy = "anonymous"
	}

	complaint, err := h.service.FlagFakeResolution(id, reportedBy, req.Reason, req.Comment)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// respondLifecycleError maps engine errors onto HTTP statuses
func respondLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		respondWithError(w, http.StatusConflict, "Invalid transition", err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
