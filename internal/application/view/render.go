package view

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"winecast-dashboard/internal/domain/entity"
	"winecast-dashboard/internal/domain/model"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
)

//go:embed templates/*.html
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// Renderer exposes the render functions to the dashboard use case.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (Renderer) RenderStatus(status entity.SystemStatus) template.HTML {
	return RenderStatus(status)
}

func (Renderer) RenderCities(cities []entity.JoinedCity) template.HTML {
	return RenderCities(cities)
}

func (Renderer) RenderAlerts(alerts []entity.Alert) (template.HTML, template.HTML) {
	return RenderAlerts(alerts)
}

func (Renderer) RenderError(message string) template.HTML {
	return RenderError(message)
}

type statusView struct {
	IndicatorClass string
	Collecting     string
	Cities         string
	RecentRecords  string
	APIKey         string
}

func RenderStatus(status entity.SystemStatus) template.HTML {
	data := statusView{
		IndicatorClass: "status-offline",
		Collecting:     msg.GetMessage("status.collecting", msg.GetMessage("status.inactive")),
		Cities:         msg.GetMessage("status.cities", status.CitiesMonitored),
		RecentRecords:  msg.GetMessage("status.recent-records", status.RecentRecords),
		APIKey:         msg.GetMessage("status.api", msg.GetMessage("status.api-not-configured")),
	}
	if status.Collecting {
		data.IndicatorClass = "status-online"
		data.Collecting = msg.GetMessage("status.collecting", msg.GetMessage("status.active"))
	}
	if status.APIKeyConfigured {
		data.APIKey = msg.GetMessage("status.api", msg.GetMessage("status.api-configured"))
	}

	return execute("status", data)
}

type cityCard struct {
	Name        string
	Region      string
	HasWeather  bool
	Temperature string
	Humidity    string
	Wind        string
	Description string
}

type citiesView struct {
	Cards       []cityCard
	Empty       string
	Unavailable string
	Analyze     string
}

func RenderCities(cities []entity.JoinedCity) template.HTML {
	data := citiesView{
		Cards:       make([]cityCard, 0, len(cities)),
		Empty:       msg.GetMessage("cities.empty"),
		Unavailable: msg.GetMessage("cities.unavailable"),
		Analyze:     msg.GetMessage("cities.analyze"),
	}

	for _, row := range cities {
		card := cityCard{
			Name:   row.City.Name,
			Region: msg.GetMessage("cities.region", row.City.Region),
		}
		if row.HasObservation() {
			card.HasWeather = true
			card.Temperature = formatNumber(roundHalfUp(row.Observation.Main.Temp))
			card.Humidity = formatNumber(row.Observation.Main.Humidity)
			card.Wind = formatNumber(row.Observation.Wind.Speed)
			card.Description = row.Observation.Description()
		}
		data.Cards = append(data.Cards, card)
	}

	return execute("cities", data)
}

type summaryView struct {
	Total  string
	High   string
	Medium string
}

type alertItem struct {
	ID             int64
	Class          entity.Severity
	Title          string
	Message        string
	Recommendation string
}

type detailView struct {
	Items       []alertItem
	Empty       string
	Acknowledge string
}

// RenderAlerts renders the counters summary and the detailed list.
// The total is the length of the list, so the summary always agrees with the detail.
func RenderAlerts(alerts []entity.Alert) (template.HTML, template.HTML) {
	summary := summaryView{
		Total:  msg.GetMessage("alerts.total", len(alerts)),
		High:   msg.GetMessage("alerts.high", entity.CountByLevel(alerts, entity.AlertLevelHigh)),
		Medium: msg.GetMessage("alerts.medium", entity.CountByLevel(alerts, entity.AlertLevelMedium)),
	}

	detail := detailView{
		Items:       make([]alertItem, 0, len(alerts)),
		Empty:       msg.GetMessage("alerts.empty"),
		Acknowledge: msg.GetMessage("alerts.acknowledge"),
	}
	for _, alert := range alerts {
		detail.Items = append(detail.Items, alertItem{
			ID:             alert.ID,
			Class:          SeverityClass(alert.Level),
			Title:          alert.CityName + " - " + FormatAlertType(alert.AlertType),
			Message:        alert.Message,
			Recommendation: alert.Recommendation,
		})
	}

	return execute("alerts-summary", summary), execute("alerts-detail", detail)
}

// FormatAlertType turns frost_risk into FROST RISK.
func FormatAlertType(alertType string) string {
	return strings.ToUpper(strings.ReplaceAll(alertType, "_", " "))
}

func SeverityClass(level entity.AlertLevel) entity.Severity {
	return level.Severity()
}

func RenderError(message string) template.HTML {
	return execute("error", message)
}

// PageData is the initial state of the full page.
type PageData struct {
	BasePath      string
	PollInterval  time.Duration
	Status        template.HTML
	Cities        template.HTML
	AlertsSummary template.HTML
	AlertsDetail  template.HTML
}

type pageView struct {
	PageData
	Title           string
	StatusTitle     string
	CitiesTitle     string
	AlertsTitle     string
	Refresh         string
	ConnectionError string
	Regions         []string
	PollMillis      int64
}

func RenderPage(data PageData) template.HTML {
	regions := make([]string, 0, len(model.Regions))
	for _, region := range model.Regions {
		regions = append(regions, string(region))
	}

	return execute("page", pageView{
		PageData:        data,
		Title:           msg.GetMessage("page.title"),
		StatusTitle:     msg.GetMessage("page.status"),
		CitiesTitle:     msg.GetMessage("page.cities"),
		AlertsTitle:     msg.GetMessage("page.alerts"),
		Refresh:         msg.GetMessage("page.refresh"),
		ConnectionError: msg.GetMessage("action.connection"),
		Regions:         regions,
		PollMillis:      data.PollInterval.Milliseconds(),
	})
}

func execute(name string, data any) template.HTML {
	var buffer bytes.Buffer
	if err := templates.ExecuteTemplate(&buffer, name, data); err != nil {
		log.Errorw("failed to render template", "template", name, "error", err)
		return ""
	}
	return template.HTML(buffer.String())
}

// roundHalfUp rounds .5 towards positive infinity and never yields negative zero.
func roundHalfUp(value float64) float64 {
	rounded := math.Floor(value + 0.5)
	if rounded == 0 {
		return 0
	}
	return rounded
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
