package api

import (
	"context"
	"fmt"
	"net/url"

	"winecast-dashboard/internal/domain/entity"
	"winecast-dashboard/internal/domain/model/external"
	"winecast-dashboard/pkg/http"
)

var acceptJSON = map[string]string{"Accept": "application/json"}

// backendGatewayImpl implements the BackendGateway interface
type backendGatewayImpl struct {
	httpClient *http.Client
}

// NewBackendGateway creates a new instance of BackendGateway with HTTP client
func NewBackendGateway(baseUrl string, clientOptions http.ClientOptions) BackendGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = NewZapHTTPLogger()
	}

	return &backendGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Call performs one request against the backend and classifies the outcome
func (g *backendGatewayImpl) Call(ctx context.Context, method http.RequestMethod, path string, target Payload) error {
	_, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(method).
		WithPath(path).
		WithHeaders(acceptJSON).
		WithSuccessResp(target).
		WithErrorResp(target).
		Execute()

	if err != nil {
		// An error status whose body decoded is still a backend answer
		if errResp != nil {
			return newApplicationError(path, target.Reason())
		}
		return newTransportError(path, err)
	}

	if !target.Succeeded() {
		return newApplicationError(path, target.Reason())
	}

	return nil
}

// FetchStatus gets the collector status
func (g *backendGatewayImpl) FetchStatus(ctx context.Context) (entity.SystemStatus, error) {
	var response external.StatusResponse
	if err := g.Call(ctx, http.GET, "/weather/status", &response); err != nil {
		return entity.SystemStatus{}, err
	}
	return response.Status, nil
}

// FetchCities lists the monitored cities
func (g *backendGatewayImpl) FetchCities(ctx context.Context) ([]entity.City, error) {
	var response external.CitiesResponse
	if err := g.Call(ctx, http.GET, "/weather/cities", &response); err != nil {
		return nil, err
	}
	return response.Cities, nil
}

// FetchCurrentWeather lists the latest observation of every city
func (g *backendGatewayImpl) FetchCurrentWeather(ctx context.Context) ([]entity.WeatherObservation, error) {
	var response external.CurrentWeatherResponse
	if err := g.Call(ctx, http.GET, "/weather/current", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// Analyze triggers the vineyard analysis of a city and returns the generated alerts
func (g *backendGatewayImpl) Analyze(ctx context.Context, cityName string) ([]entity.Alert, error) {
	path := fmt.Sprintf("/weather/analyze/%s", url.PathEscape(cityName))

	var response external.AnalyzeResponse
	if err := g.Call(ctx, http.GET, path, &response); err != nil {
		return nil, err
	}
	return response.Alerts, nil
}

// FetchAlerts lists active, unacknowledged alerts
func (g *backendGatewayImpl) FetchAlerts(ctx context.Context) ([]entity.Alert, error) {
	var response external.AlertsResponse
	if err := g.Call(ctx, http.GET, "/alerts", &response); err != nil {
		return nil, err
	}
	return response.Alerts, nil
}

// Acknowledge marks one alert as resolved
func (g *backendGatewayImpl) Acknowledge(ctx context.Context, alertID int64) error {
	var response external.Envelope
	return g.Call(ctx, http.POST, fmt.Sprintf("/alerts/%d/acknowledge", alertID), &response)
}

// Deactivate switches one alert off without acknowledging it
func (g *backendGatewayImpl) Deactivate(ctx context.Context, alertID int64) error {
	var response external.Envelope
	return g.Call(ctx, http.POST, fmt.Sprintf("/alerts/%d/deactivate", alertID), &response)
}

// Collect forces a collection round and returns the collected city names
func (g *backendGatewayImpl) Collect(ctx context.Context) ([]string, error) {
	var response external.CollectResponse
	if err := g.Call(ctx, http.POST, "/weather/collect", &response); err != nil {
		return nil, err
	}
	return response.CitiesCollected, nil
}
