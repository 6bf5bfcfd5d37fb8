package health

import (
	"context"
	"errors"
	"time"

	"winecast-dashboard/internal/domain/gateway/api"
	"winecast-dashboard/internal/domain/gateway/region"
	"winecast-dashboard/internal/domain/model"
)

const backendCheckTimeout = 3 * time.Second

type healthUseCase struct {
	backendGateway api.BackendGateway
	regionGateway  region.RegionGateway
}

func NewHealthUseCase(backendGateway api.BackendGateway, regionGateway region.RegionGateway) UseCase {
	return &healthUseCase{
		backendGateway: backendGateway,
		regionGateway:  regionGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	backendHealth := useCase.checkBackend(ctx)
	regionHealth := useCase.regionGateway.Health()

	overallStatus := model.StatusUp
	if backendHealth.Status != model.StatusUp || regionHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Backend:     backendHealth,
		RegionStore: regionHealth,
	}
}

// checkBackend treats any decoded answer as reachable, even one reporting success:false.
func (useCase *healthUseCase) checkBackend(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, backendCheckTimeout)
	defer cancel()

	start := time.Now()
	_, err := useCase.backendGateway.FetchStatus(ctx)
	details := map[string]string{"latency": time.Since(start).String()}

	switch {
	case err == nil:
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	case errors.Is(err, api.ErrApplication):
		details["reason"] = api.ReasonOf(err)
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	default:
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
}
