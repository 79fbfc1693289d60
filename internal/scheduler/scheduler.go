package scheduler

import (
	"context"
	"copytrade/internal/logger"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on cron schedules until its context is cancelled.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Scheduler {
	if log == nil {
		log = logger.FromContext(context.Background())
	}
	return &Scheduler{
		cron: cron.New(),
		log:  log.With("component", "scheduler"),
	}
}

// AddJob registers job under a standard cron expression or a descriptor such as
// "@every 15s".
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx := logger.WithLogger(context.Background(), s.log.With("job", job.Name()))
		if err := job.Run(ctx); err != nil {
			s.log.Errorw("job failed", "job", job.Name(), "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s at %q: %w", job.Name(), schedule, err)
	}

	s.log.Infow("job registered", "job", job.Name(), "schedule", schedule)
	return nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// in-flight jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.log.Info("scheduler started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

type jobFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (j jobFunc) Name() string {
	return j.name
}

func (j jobFunc) Run(ctx context.Context) error {
	return j.fn(ctx)
}

func NewJob(name string, fn func(ctx context.Context) error) Job {
	return jobFunc{name: name, fn: fn}
}
