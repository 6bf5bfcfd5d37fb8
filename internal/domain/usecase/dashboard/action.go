package dashboard

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"winecast-dashboard/internal/domain/gateway/api"
	"winecast-dashboard/internal/domain/model"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
)

// Analyze asks the backend to evaluate one city and refreshes the alerts regions on success.
func (useCase *dashboardUseCase) Analyze(ctx context.Context, cityName string) model.Notification {
	alerts, err := useCase.backendGateway.Analyze(ctx, cityName)
	if err != nil {
		log.Warn("city analysis failed", zap.String("city", cityName), zap.Error(err))
		if errors.Is(err, api.ErrApplication) {
			return failure(msg.GetMessage("action.analyze.failed", cityName, api.ReasonOf(err)))
		}
		return failure(msg.GetMessage("action.analyze.connection", cityName))
	}

	useCase.RefreshAlerts(ctx, newCycleID())
	return success(msg.GetMessage("action.analyze.success", cityName, len(alerts)))
}

func (useCase *dashboardUseCase) Acknowledge(ctx context.Context, alertID int64) model.Notification {
	return useCase.alertAction(ctx, alertID, "acknowledge", useCase.backendGateway.Acknowledge)
}

func (useCase *dashboardUseCase) Deactivate(ctx context.Context, alertID int64) model.Notification {
	return useCase.alertAction(ctx, alertID, "deactivate", useCase.backendGateway.Deactivate)
}

// alertAction performs one alert write. Regions are left untouched when it fails.
func (useCase *dashboardUseCase) alertAction(ctx context.Context, alertID int64, action string, call func(context.Context, int64) error) model.Notification {
	if err := call(ctx, alertID); err != nil {
		log.Warn("alert action failed", zap.String("action", action), zap.Int64("alert_id", alertID), zap.Error(err))
		if errors.Is(err, api.ErrApplication) {
			return failure(msg.GetMessage("action." + action + ".failed"))
		}
		return failure(msg.GetMessage("action.connection"))
	}

	useCase.RefreshAlerts(ctx, newCycleID())
	return success(msg.GetMessage("action." + action + ".success"))
}

// Collect forces a backend collection round, then refreshes the status and cities regions.
func (useCase *dashboardUseCase) Collect(ctx context.Context) model.Notification {
	collected, err := useCase.backendGateway.Collect(ctx)
	if err != nil {
		log.Warn("forced collection failed", zap.Error(err))
		if errors.Is(err, api.ErrApplication) {
			return failure(msg.GetMessage("action.collect.failed", api.ReasonOf(err)))
		}
		return failure(msg.GetMessage("action.connection"))
	}

	cycleID := newCycleID()
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		useCase.RefreshStatus(ctx, cycleID)
	}()

	go func() {
		defer wg.Done()
		useCase.RefreshCities(ctx, cycleID)
	}()

	wg.Wait()

	return success(msg.GetMessage("action.collect.success", len(collected)))
}

func success(message string) model.Notification {
	return model.Notification{Success: true, Message: message}
}

func failure(message string) model.Notification {
	return model.Notification{Success: false, Message: message}
}
