package ai

import (
	"context"
	"log"
	"time"

	"heirloom/models"
	"heirloom/storage"
)

// Worker drains a queue of analysis jobs. The HTTP handler only inserts
// the pending row and enqueues the id, so the submission response never
// waits on the inference service. Jobs left pending by a crash are
// requeued on the next start.
type Worker struct {
	analyzer Analyzer
	jobs     chan uint
	timeout  time.Duration
}

func NewWorker(analyzer Analyzer) *Worker {
	return &Worker{
		analyzer: analyzer,
		jobs:     make(chan uint, 64),
		timeout:  2 * time.Minute,
	}
}

// Start requeues pending analyses and begins draining the queue.
func (w *Worker) Start() {
	ids, err := storage.PendingAnalysisIDs()
	if err != nil {
		log.Println("Failed to list pending analyses:", err)
	}
	for _, id := range ids {
		w.Enqueue(id)
	}

	go func() {
		for id := range w.jobs {
			w.process(id)
		}
	}()
}

// Enqueue hands a pending analysis to the worker. If the queue is full
// the row stays pending and is picked up on the next start.
func (w *Worker) Enqueue(id uint) {
	select {
	case w.jobs <- id:
	default:
		log.Printf("Analysis queue full, leaving analysis %d pending", id)
	}
}

func (w *Worker) process(id uint) {
	if err := storage.UpdateAnalysisStatus(id, models.AnalysisStatusProcessing); err != nil {
		log.Printf("Failed to mark analysis %d processing: %v", id, err)
		return
	}

	analysis, err := storage.GetAnalysisByID(id)
	if err != nil {
		log.Printf("Failed to load analysis %d: %v", id, err)
		w.fail(id)
		return
	}

	if w.analyzer == nil {
		log.Printf("No analyzer configured, failing analysis %d", id)
		w.fail(id)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	results, err := w.analyzer.Analyze(ctx, analysis)
	if err != nil {
		log.Printf("Analysis %d failed: %v", id, err)
		w.fail(id)
		return
	}

	if err := storage.FinishAnalysis(id, models.AnalysisStatusCompleted, results); err != nil {
		log.Printf("Failed to record results for analysis %d: %v", id, err)
	}
}

func (w *Worker) fail(id uint) {
	results := models.AnalysisResults{
		Materials:    []string{},
		Authenticity: "Analysis Failed",
		Condition:    "Unknown",
	}
	if err := storage.FinishAnalysis(id, models.AnalysisStatusFailed, results); err != nil {
		log.Printf("Failed to mark analysis %d failed: %v", id, err)
	}
}
