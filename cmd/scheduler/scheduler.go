package main

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// reconcileUniqueWindow keeps overlapping runs from queueing twice
	reconcileUniqueWindow = 10 * time.Minute
	enqueueTimeout        = 10 * time.Second
)

// ReconcileEnqueuer queues upvote counter reconciliation
type ReconcileEnqueuer interface {
	EnqueueReconcileUpvotes(ctx context.Context, window time.Duration) error
}

// Scheduler enqueues periodic maintenance tasks
type Scheduler struct {
	enqueuer ReconcileEnqueuer
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance
func NewScheduler(enqueuer ReconcileEnqueuer, schedule string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		enqueuer: enqueuer,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start registers the reconciliation job and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.reconcileUpvotes); err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("reconcile_cron", s.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running job to return
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// reconcileUpvotes enqueues one reconciliation task
func (s *Scheduler) reconcileUpvotes() {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	if err := s.enqueuer.EnqueueReconcileUpvotes(ctx, reconcileUniqueWindow); err != nil {
		s.logger.Error("Failed to enqueue upvote reconciliation", zap.Error(err))
		return
	}
	s.logger.Debug("Enqueued upvote reconciliation")
}
