package handler

import (
	"encoding/json"
	"net/http"

	"janseva/models"
	"janseva/service"
)

// WorkerHandler handles HTTP requests for the worker directory
type WorkerHandler struct {
	service *service.WorkerService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(svc *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{service: svc}
}

// RegisterWorker handles POST /api/v1/workers. Re-registering a known
// contact returns the existing profile with 200 instead of 201.
func (h *WorkerHandler) RegisterWorker(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "failed to parse request body")
		return
	}
	if req.Name == "" || req.Contact == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "name and contact are required")
		return
	}

	worker, created, err := h.service.Register(req.Name, req.Contact)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondWithJSON(w, status, worker)
}

// ListWorkers handles GET /api/v1/workers
func (h *WorkerHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.service.List()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if workers == nil {
		workers = []models.WorkerProfile{}
	}
	respondWithJSON(w, http.StatusOK, workers)
}
