package model

import "time"

// Region names one display area of the dashboard. Each pipeline owns its regions exclusively.
type Region string

const (
	RegionStatus        Region = "status"
	RegionCities        Region = "cities"
	RegionAlertsSummary Region = "alerts-summary"
	RegionAlertsDetail  Region = "alerts-detail"
)

// Regions lists every display region in page order.
var Regions = []Region{RegionStatus, RegionCities, RegionAlertsSummary, RegionAlertsDetail}

// ParseRegion validates a region name coming from a request.
func ParseRegion(name string) (Region, bool) {
	for _, region := range Regions {
		if string(region) == name {
			return region, true
		}
	}
	return "", false
}

// Fragment is the rendered content of a region. Writes replace the whole region.
type Fragment struct {
	Region     Region    `json:"region"`
	HTML       string    `json:"html"`
	CycleID    string    `json:"cycleId"`
	RenderedAt time.Time `json:"renderedAt"`
}
