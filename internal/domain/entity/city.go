package entity

type City struct {
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// JoinedCity pairs a monitored city with its latest observation, nil when the backend has none.
type JoinedCity struct {
	City        City                `json:"city"`
	Observation *WeatherObservation `json:"observation,omitempty"`
}

// HasObservation reports whether weather data is available for the city.
func (j JoinedCity) HasObservation() bool {
	return j.Observation != nil
}
