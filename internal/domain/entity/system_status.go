package entity

type SystemStatus struct {
	Collecting       bool `json:"collecting"`
	CitiesMonitored  int  `json:"cities_monitored"`
	RecentRecords    int  `json:"recent_records"`
	APIKeyConfigured bool `json:"api_key_configured"`
}
