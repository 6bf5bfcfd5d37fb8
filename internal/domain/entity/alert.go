package entity

// AlertLevel is the backend classification of a vineyard alert.
type AlertLevel string

const (
	AlertLevelLow      AlertLevel = "baixo"
	AlertLevelMedium   AlertLevel = "médio"
	AlertLevelHigh     AlertLevel = "alto"
	AlertLevelCritical AlertLevel = "crítico"
)

// Severity drives the visual styling of an alert.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Severity maps alto to high and médio to medium. Every other level, known or not, is low.
func (l AlertLevel) Severity() Severity {
	switch l {
	case AlertLevelHigh:
		return SeverityHigh
	case AlertLevelMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

type Alert struct {
	ID             int64      `json:"id"`
	CityID         int64      `json:"city_id"`
	CityName       string     `json:"city_name"`
	AlertType      string     `json:"alert_type"`
	Level          AlertLevel `json:"level"`
	Message        string     `json:"message"`
	Recommendation string     `json:"recommendation"`
	CreatedAt      string     `json:"created_at"`
	ExpiresAt      *string    `json:"expires_at"` // nil when the alert never expires
}

// CountByLevel returns how many alerts carry the given level.
func CountByLevel(alerts []Alert, level AlertLevel) int {
	count := 0
	for _, alert := range alerts {
		if alert.Level == level {
			count++
		}
	}
	return count
}
