package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"winecast-dashboard/internal/domain/entity"
	"winecast-dashboard/internal/domain/model"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
)

func (useCase *dashboardUseCase) RefreshAll(ctx context.Context) {
	cycleID := newCycleID()
	start := time.Now()
	log.Info(msg.GetMessage("dashboard.cycle.start", cycleID), zap.String("cycle_id", cycleID))

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		useCase.RefreshStatus(ctx, cycleID)
	}()

	go func() {
		defer wg.Done()
		useCase.RefreshCities(ctx, cycleID)
	}()

	go func() {
		defer wg.Done()
		useCase.RefreshAlerts(ctx, cycleID)
	}()

	wg.Wait()

	log.Info(msg.GetMessage("dashboard.cycle.end", cycleID, time.Since(start)), zap.String("cycle_id", cycleID))
}

func (useCase *dashboardUseCase) RefreshStatus(ctx context.Context, cycleID string) {
	status, err := useCase.backendGateway.FetchStatus(ctx)
	if err != nil {
		useCase.fail(ctx, cycleID, "status", model.RegionStatus, msg.GetMessage("status.error"), err)
		return
	}

	useCase.write(ctx, cycleID, model.RegionStatus, useCase.renderer.RenderStatus(status))
}

// RefreshCities fetches the city list and the current weather together, so both inputs come from the same cycle.
func (useCase *dashboardUseCase) RefreshCities(ctx context.Context, cycleID string) {
	var wg sync.WaitGroup
	var cities []entity.City
	var observations []entity.WeatherObservation
	var citiesErr, weatherErr error

	wg.Add(2)

	go func() {
		defer wg.Done()
		cities, citiesErr = useCase.backendGateway.FetchCities(ctx)
	}()

	go func() {
		defer wg.Done()
		observations, weatherErr = useCase.backendGateway.FetchCurrentWeather(ctx)
	}()

	wg.Wait()

	if citiesErr != nil {
		useCase.fail(ctx, cycleID, "cities", model.RegionCities, msg.GetMessage("cities.error"), citiesErr)
		return
	}
	if weatherErr != nil {
		useCase.fail(ctx, cycleID, "cities", model.RegionCities, msg.GetMessage("cities.error"), weatherErr)
		return
	}

	useCase.write(ctx, cycleID, model.RegionCities, useCase.renderer.RenderCities(Join(cities, observations)))
}

// RefreshAlerts renders both alert regions from one fetch. On failure only the summary shows the error.
func (useCase *dashboardUseCase) RefreshAlerts(ctx context.Context, cycleID string) {
	alerts, err := useCase.backendGateway.FetchAlerts(ctx)
	if err != nil {
		useCase.fail(ctx, cycleID, "alerts", model.RegionAlertsSummary, msg.GetMessage("alerts.error"), err)
		return
	}

	summary, detail := useCase.renderer.RenderAlerts(alerts)
	useCase.write(ctx, cycleID, model.RegionAlertsSummary, summary)
	useCase.write(ctx, cycleID, model.RegionAlertsDetail, detail)
}

func (useCase *dashboardUseCase) fail(ctx context.Context, cycleID string, pipeline string, target model.Region, message string, err error) {
	log.Error(msg.GetMessage("dashboard.pipeline.failed", pipeline, cycleID),
		zap.String("cycle_id", cycleID),
		zap.String("pipeline", pipeline),
		zap.Error(err),
	)
	useCase.write(ctx, cycleID, target, useCase.renderer.RenderError(message))
}
