package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"janseva/handler"
	"janseva/middleware"
	"janseva/service"
)

// SetupRoutes configures all API routes. redisClient may be nil; the
// submission rate limiter is only attached when redis and a limit are
// configured.
func SetupRoutes(
	complaintService *service.ComplaintService,
	sweepService *service.SweepService,
	notificationService *service.NotificationService,
	workerService *service.WorkerService,
	redisClient *redis.Client,
	dailySubmissionLimit int,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Actor)

	complaintHandler := handler.NewComplaintHandler(complaintService)
	sweepHandler := handler.NewSweepHandler(sweepService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	workerHandler := handler.NewWorkerHandler(workerService)

	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	// Complaint lifecycle
	createComplaint := http.Handler(http.HandlerFunc(complaintHandler.CreateComplaint))
	if redisClient != nil && dailySubmissionLimit > 0 {
		createComplaint = middleware.SubmissionRateLimiter(redisClient, dailySubmissionLimit)(createComplaint)
	}
	apiV1.Handle("/complaints", createComplaint).Methods("POST")
	apiV1.HandleFunc("/complaints", complaintHandler.ListComplaints).Methods("GET")
	apiV1.HandleFunc("/complaints/{id}", complaintHandler.GetComplaint).Methods("GET")
	apiV1.HandleFunc("/complaints/{id}/timeline", complaintHandler.GetTimeline).Methods("GET")
	apiV1.HandleFunc("/complaints/{id}/status", complaintHandler.UpdateStatus).Methods("POST")
	apiV1.HandleFunc("/complaints/{id}/reject", complaintHandler.RejectWork).Methods("POST")
	apiV1.HandleFunc("/complaints/{id}/fake-report", complaintHandler.FileFakeReport).Methods("POST")

	// SLA escalation sweep (pull-driven, called on dashboard load)
	apiV1.HandleFunc("/sweep", sweepHandler.RunSweep).Methods("POST")

	// Worker directory
	apiV1.HandleFunc("/workers", workerHandler.RegisterWorker).Methods("POST")
	apiV1.HandleFunc("/workers", workerHandler.ListWorkers).Methods("GET")

	// Notification log
	apiV1.HandleFunc("/notifications", notificationHandler.SendNotification).Methods("POST")
	apiV1.HandleFunc("/notifications", notificationHandler.ListNotifications).Methods("GET")
	apiV1.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods("POST")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return router
}
