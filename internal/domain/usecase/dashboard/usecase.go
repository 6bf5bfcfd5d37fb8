package dashboard

import (
	"context"
	"html/template"

	"winecast-dashboard/internal/domain/entity"
	"winecast-dashboard/internal/domain/model"
)

// Renderer turns backend entities into region fragments.
type Renderer interface {
	RenderStatus(status entity.SystemStatus) template.HTML
	RenderCities(cities []entity.JoinedCity) template.HTML
	RenderAlerts(alerts []entity.Alert) (summary template.HTML, detail template.HTML)
	RenderError(message string) template.HTML
}

type UseCase interface {
	// RefreshAll runs the status, cities and alerts pipelines concurrently and waits for all of them
	RefreshAll(ctx context.Context)
	RefreshStatus(ctx context.Context, cycleID string)
	RefreshCities(ctx context.Context, cycleID string)
	RefreshAlerts(ctx context.Context, cycleID string)

	Analyze(ctx context.Context, cityName string) model.Notification
	Acknowledge(ctx context.Context, alertID int64) model.Notification
	Deactivate(ctx context.Context, alertID int64) model.Notification
	Collect(ctx context.Context) model.Notification

	// Fragment returns the latest rendered content of a region
	Fragment(ctx context.Context, region model.Region) (model.Fragment, bool, error)
}
