package api

import (
	"context"

	"winecast-dashboard/internal/domain/entity"
	"winecast-dashboard/pkg/http"
)

// Payload is implemented by every backend response envelope.
type Payload interface {
	Succeeded() bool
	Reason() string
}

// BackendGateway defines the calls the dashboard makes against the winecast backend.
// Every failure is a *FetchError; check it with errors.Is(err, ErrTransport) or errors.Is(err, ErrApplication).
type BackendGateway interface {
	// Call performs one request and decodes the body into target, whatever the HTTP status.
	// A payload without success:true is reported as an application failure.
	Call(ctx context.Context, method http.RequestMethod, path string, target Payload) error

	// FetchStatus gets the collector status
	FetchStatus(ctx context.Context) (entity.SystemStatus, error)

	// FetchCities lists the monitored cities
	FetchCities(ctx context.Context) ([]entity.City, error)

	// FetchCurrentWeather lists the latest observation of every city
	FetchCurrentWeather(ctx context.Context) ([]entity.WeatherObservation, error)

	// Analyze triggers the vineyard analysis of a city and returns the generated alerts
	Analyze(ctx context.Context, cityName string) ([]entity.Alert, error)

	// FetchAlerts lists active, unacknowledged alerts
	FetchAlerts(ctx context.Context) ([]entity.Alert, error)

	// Acknowledge marks one alert as resolved
	Acknowledge(ctx context.Context, alertID int64) error

	// Deactivate switches one alert off without acknowledging it
	Deactivate(ctx context.Context, alertID int64) error

	// Collect forces a collection round and returns the collected city names
	Collect(ctx context.Context) ([]string, error)
}
