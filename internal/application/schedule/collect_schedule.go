package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"winecast-dashboard/internal/domain/usecase/dashboard"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
)

// CollectScheduler forces a backend collection round on a cron expression.
type CollectScheduler struct {
	cron       *cron.Cron
	useCase    dashboard.UseCase
	expression string
}

func NewCollectScheduler(useCase dashboard.UseCase, expression string) *CollectScheduler {
	return &CollectScheduler{cron: cron.New(), useCase: useCase, expression: expression}
}

// InitCollectScheduleTasks starts the cron. An empty expression leaves forced collection disabled.
func (s *CollectScheduler) InitCollectScheduleTasks() bool {
	if s.expression == "" {
		return false
	}

	_, err := s.cron.AddFunc(s.expression, s.ForceCollect)

	if err != nil {
		panic(err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("dashboard.schedule.collect-started", s.expression))
	return true
}

func (s *CollectScheduler) ForceCollect() {
	requestID := uuid.New().String()

	notification := s.useCase.Collect(context.Background())
	if !notification.Success {
		log.Error(notification.Message, zap.String("request_id", requestID))
		return
	}

	log.Info(notification.Message, zap.String("request_id", requestID))
}

// Stop waits for a running collection to finish
func (s *CollectScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
