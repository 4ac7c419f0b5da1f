package worker

import (
	"log"
	"time"

	"janseva/service"
)

// SweepWorker optionally drives the overdue sweep on a timer. The sweep is
// pull-driven by default (dashboard loads call it); this worker exists for
// deployments without a regular dashboard visitor and is disabled unless
// SWEEP_INTERVAL_SECONDS is set.
type SweepWorker struct {
	sweepService *service.SweepService
	interval     time.Duration
	stopChan     chan struct{}
	running      bool
}

// NewSweepWorker creates a new periodic sweep worker
func NewSweepWorker(sweepService *service.SweepService, interval time.Duration) *SweepWorker {
	return &SweepWorker{
		sweepService: sweepService,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the worker goroutine; safe to call once
func (w *SweepWorker) Start() {
	if w.running {
		log.Println("[sweep] worker is already running")
		return
	}
	w.running = true
	log.Printf("[sweep] worker started (interval: %v)", w.interval)
	go w.run()
}

// Stop stops the worker
func (w *SweepWorker) Stop() {
	if !w.running {
		return
	}
	close(w.stopChan)
	w.running = false
	log.Println("[sweep] worker stopped")
}

func (w *SweepWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run once on start, then on every tick. The overdue-flag guard makes
	// repeated runs idempotent.
	w.sweep()
	for {
		select {
		case <-ticker.C:
			w.sweep()
		case <-w.stopChan:
			return
		}
	}
}

func (w *SweepWorker) sweep() {
	start := time.Now()
	results, err := w.sweepService.SweepOverdue()
	if err != nil {
		log.Printf("[sweep] error processing overdue complaints: %v", err)
		return
	}
	log.Printf("[sweep] completed in %v: %d escalated", time.Since(start), len(results))
}
