package dashboard

import (
	"context"
	"html/template"
	"time"

	"github.com/google/uuid"

	"winecast-dashboard/internal/domain/gateway/api"
	"winecast-dashboard/internal/domain/gateway/region"
	"winecast-dashboard/internal/domain/model"
	"winecast-dashboard/pkg/log"
)

type dashboardUseCase struct {
	backendGateway api.BackendGateway
	regionGateway  region.RegionGateway
	renderer       Renderer
	now            func() time.Time
}

func NewDashboardUseCase(backendGateway api.BackendGateway, regionGateway region.RegionGateway, renderer Renderer) UseCase {
	return &dashboardUseCase{
		backendGateway: backendGateway,
		regionGateway:  regionGateway,
		renderer:       renderer,
		now:            time.Now,
	}
}

func (useCase *dashboardUseCase) Fragment(ctx context.Context, region model.Region) (model.Fragment, bool, error) {
	return useCase.regionGateway.Read(ctx, region)
}

// write replaces a region. A failed write only costs one stale region until the next cycle.
func (useCase *dashboardUseCase) write(ctx context.Context, cycleID string, target model.Region, html template.HTML) {
	fragment := model.Fragment{
		Region:     target,
		HTML:       string(html),
		CycleID:    cycleID,
		RenderedAt: useCase.now(),
	}

	if err := useCase.regionGateway.Write(ctx, fragment); err != nil {
		log.Errorw("failed to write region", "region", target, "cycle_id", cycleID, "error", err)
	}
}

func newCycleID() string {
	return uuid.New().String()
}
