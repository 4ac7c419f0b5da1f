package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"janseva/config"
	"janseva/repository"
	"janseva/routes"
	"janseva/schema"
	"janseva/service"
	"janseva/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.LoadConfig()

	var complaintRepo repository.ComplaintRepository
	var notificationRepo repository.NotificationRepository
	var workerRepo repository.WorkerRepository

	switch cfg.Database.Driver {
	case "memory":
		log.Println("[main] using in-memory storage (records are not durable)")
		complaintRepo = repository.NewMemoryComplaintRepository()
		notificationRepo = repository.NewMemoryNotificationRepository()
		workerRepo = repository.NewMemoryWorkerRepository()
	default:
		// UTC so stored timestamps compare cleanly with engine time
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
		)
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			log.Fatalf("Failed to open database connection: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		log.Println("Database connection established")

		if err := schema.Init(db); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		complaintRepo = repository.NewMySQLComplaintRepository(db)
		notificationRepo = repository.NewMySQLNotificationRepository(db)
		workerRepo = repository.NewMySQLWorkerRepository(db)
	}

	notificationService := service.NewNotificationService(notificationRepo)
	complaintService := service.NewComplaintService(complaintRepo, notificationService)
	sweepService := service.NewSweepService(complaintService, notificationService)
	workerService := service.NewWorkerService(workerRepo)

	// Optional redis for the submission rate limiter
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" && cfg.Limits.DailySubmissions > 0 {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		log.Printf("[main] submission rate limiter enabled (%d/day)", cfg.Limits.DailySubmissions)
	}

	// Optional timer-driven sweep; the default is pull-driven via POST /sweep
	if cfg.Sweep.IntervalSeconds > 0 {
		sweepWorker := worker.NewSweepWorker(sweepService, time.Duration(cfg.Sweep.IntervalSeconds)*time.Second)
		sweepWorker.Start()
		defer sweepWorker.Stop()
	}

	router := routes.SetupRoutes(
		complaintService,
		sweepService,
		notificationService,
		workerService,
		redisClient,
		cfg.Limits.DailySubmissions,
	)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
