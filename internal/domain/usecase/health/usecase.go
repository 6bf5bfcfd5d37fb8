package health

import (
	"context"

	"winecast-dashboard/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}
