package entity

type WeatherObservation struct {
	Name    string             `json:"name"`
	Main    WeatherMain        `json:"main"`
	Wind    WeatherWind        `json:"wind"`
	Weather []WeatherCondition `json:"weather"`
}

type WeatherMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type WeatherWind struct {
	Speed float64 `json:"speed"`
}

type WeatherCondition struct {
	Description string `json:"description"`
}

// Description returns the first weather description, or an empty string when the backend sent none.
func (w WeatherObservation) Description() string {
	if len(w.Weather) == 0 {
		return ""
	}
	return w.Weather[0].Description
}
