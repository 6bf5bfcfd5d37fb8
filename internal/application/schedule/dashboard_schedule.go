package schedule

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"winecast-dashboard/internal/domain/usecase/dashboard"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
)

// DashboardScheduler re-renders every region at a fixed interval.
// Cycles are allowed to overlap: a slow cycle never delays the next one.
type DashboardScheduler struct {
	scheduler gocron.Scheduler
	useCase   dashboard.UseCase
	interval  time.Duration
}

// NewDashboardScheduler creates the scheduler. Options are forwarded to gocron, tests use them to inject a fake clock.
func NewDashboardScheduler(useCase dashboard.UseCase, interval time.Duration, options ...gocron.SchedulerOption) (*DashboardScheduler, error) {
	scheduler, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, err
	}

	return &DashboardScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		interval:  interval,
	}, nil
}

// InitDashboardScheduleTasks registers the refresh job, runs it once right away and starts the scheduler
func (s *DashboardScheduler) InitDashboardScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.RefreshDashboard),
		gocron.WithName("dashboard-refresh"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Info(msg.GetMessage("dashboard.schedule.started", s.interval))
	return nil
}

func (s *DashboardScheduler) RefreshDashboard() {
	s.useCase.RefreshAll(context.Background())
}

// Stop cancels future cycles. A cycle already running finishes on its own.
func (s *DashboardScheduler) Stop() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return err
	}
	log.Info(msg.GetMessage("dashboard.schedule.stopped"))
	return nil
}
