package handler

import (
	"net/http"

	"janseva/service"
)

// SweepHandler exposes the pull-driven overdue sweep
type SweepHandler struct {
	service *service.SweepService
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler(svc *service.SweepService) *SweepHandler {
	return &SweepHandler{service: svc}
}

// RunSweep handles POST /api/v1/sweep, invoked by dashboard collaborators
// on load.
func (h *SweepHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.SweepOverdue()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}
	if results == nil {
		results = []service.SweepResult{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"escalated": len(results),
		"results":   results,
	})
}
