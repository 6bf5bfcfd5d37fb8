package external

import "winecast-dashboard/internal/domain/entity"

// Envelope is the part shared by every backend payload.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Succeeded reports whether the payload carries success:true.
func (e Envelope) Succeeded() bool {
	return e.Success
}

// Reason returns the most specific failure description the backend provided.
func (e Envelope) Reason() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// StatusResponse is returned by GET /weather/status
type StatusResponse struct {
	Envelope
	Status entity.SystemStatus `json:"status"`
}

// CitiesResponse is returned by GET /weather/cities
type CitiesResponse struct {
	Envelope
	Cities []entity.City `json:"cities"`
}

// CurrentWeatherResponse is returned by GET /weather/current
type CurrentWeatherResponse struct {
	Envelope
	Data      []entity.WeatherObservation `json:"data"`
	Timestamp string                      `json:"timestamp,omitempty"`
}

// AnalyzeResponse is returned by GET /weather/analyze/{city}
type AnalyzeResponse struct {
	Envelope
	City   string         `json:"city,omitempty"`
	Alerts []entity.Alert `json:"alerts"`
}

// AlertsResponse is returned by GET /alerts
type AlertsResponse struct {
	Envelope
	Count  int            `json:"count"`
	Alerts []entity.Alert `json:"alerts"`
}

// CollectResponse is returned by POST /weather/collect
type CollectResponse struct {
	Envelope
	CitiesCollected []string `json:"cities_collected"`
}
