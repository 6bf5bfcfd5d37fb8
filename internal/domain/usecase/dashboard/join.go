package dashboard

import "winecast-dashboard/internal/domain/entity"

// Join pairs every city with the first observation carrying the same name.
// Output keeps the order and cardinality of cities; cities without a match get a nil observation.
func Join(cities []entity.City, observations []entity.WeatherObservation) []entity.JoinedCity {
	joined := make([]entity.JoinedCity, 0, len(cities))

	for _, city := range cities {
		row := entity.JoinedCity{City: city}
		for i := range observations {
			if observations[i].Name == city.Name {
				observation := observations[i]
				row.Observation = &observation
				break
			}
		}
		joined = append(joined, row)
	}

	return joined
}
