package scheduler

import (
	"context"
	"fmt"
	"time"

	"todo-go-backend/pkg/usecase/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// HealthCheckJob is the name of the store health job.
const HealthCheckJob = "store_health_check"

const healthCheckTimeout = 30 * time.Second

// Pinger is anything that can verify the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReport is the outcome of one health check run.
type HealthReport struct {
	CheckedAt time.Time
	Latency   time.Duration
	Todos     int
}

// Scheduler manages cron jobs
type Scheduler struct {
	cron     *cron.Cron
	store    Pinger
	todoRepo repository.Todo
	logger   *zap.SugaredLogger
	entryIDs map[string]cron.EntryID // Map job names to cron entry IDs
}

// NewScheduler creates a new scheduler
func NewScheduler(store Pinger, todoRepo repository.Todo, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		store:    store,
		todoRepo: todoRepo,
		logger:   logger,
		entryIDs: make(map[string]cron.EntryID),
	}
}

// Start registers the health job on schedule and starts the cron runner.
// An empty schedule disables the job.
func (s *Scheduler) Start(ctx context.Context, schedule string) error {
	if schedule == "" {
		s.logger.Infow("cron scheduler disabled", "job", HealthCheckJob)
		return nil
	}

	id, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.RunHealthCheck(ctx); err != nil {
			s.logger.Errorw("job failed", "job", HealthCheckJob, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", HealthCheckJob, err)
	}
	s.entryIDs[HealthCheckJob] = id

	s.logger.Infow("starting cron scheduler", "job", HealthCheckJob, "schedule", schedule)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Entries returns the registered job names and their next run.
func (s *Scheduler) Entries() map[string]time.Time {
	next := make(map[string]time.Time, len(s.entryIDs))
	for name, id := range s.entryIDs {
		next[name] = s.cron.Entry(id).Next
	}
	return next
}

// RunHealthCheck pings the store and counts stored todos.
func (s *Scheduler) RunHealthCheck(ctx context.Context) (HealthReport, error) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	report := HealthReport{CheckedAt: start}

	if err := s.store.Ping(ctx); err != nil {
		return report, fmt.Errorf("store unreachable: %w", err)
	}
	count, err := s.todoRepo.Count(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to count todos: %w", err)
	}
	report.Todos = count
	report.Latency = time.Since(start)

	s.logger.Infow("store healthy",
		"job", HealthCheckJob,
		"todos", report.Todos,
		"latency", report.Latency,
	)
	return report, nil
}
