package controller

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"winecast-dashboard/internal/application/view"
	"winecast-dashboard/internal/domain/model"
	"winecast-dashboard/internal/domain/usecase/dashboard"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
	"winecast-dashboard/pkg/util/numberutils"
)

const defaultPollInterval = 5 * time.Second

type DashboardController struct {
	api          *echo.Group
	useCase      dashboard.UseCase
	basePath     string
	pollInterval time.Duration
}

// NewDashboardController creates the controller. basePath is the prefix the browser uses to reach the group.
func NewDashboardController(api *echo.Group, useCase dashboard.UseCase, basePath string, pollInterval time.Duration) *DashboardController {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &DashboardController{api: api, useCase: useCase, basePath: basePath, pollInterval: pollInterval}
}

// InitDashboardRoutes initializes the page, region and action routes. actionMiddleware only wraps the write actions.
func (controller *DashboardController) InitDashboardRoutes(actionMiddleware ...echo.MiddlewareFunc) {
	controller.api.GET("/", controller.Page)
	controller.api.GET("/regions/:region", controller.Region)
	controller.api.POST("/refresh", controller.Refresh)

	controller.api.POST("/cities/:name/analyze", controller.Analyze, actionMiddleware...)
	controller.api.POST("/alerts/:id/acknowledge", controller.Acknowledge, actionMiddleware...)
	controller.api.POST("/alerts/:id/deactivate", controller.Deactivate, actionMiddleware...)
	controller.api.POST("/collect", controller.Collect, actionMiddleware...)
}

// Page renders the full dashboard with the latest fragment of every region
func (controller *DashboardController) Page(c echo.Context) error {
	ctx := c.Request().Context()

	page := view.PageData{
		BasePath:      controller.basePath,
		PollInterval:  controller.pollInterval,
		Status:        controller.fragment(ctx, model.RegionStatus),
		Cities:        controller.fragment(ctx, model.RegionCities),
		AlertsSummary: controller.fragment(ctx, model.RegionAlertsSummary),
		AlertsDetail:  controller.fragment(ctx, model.RegionAlertsDetail),
	}

	return c.HTML(http.StatusOK, string(view.RenderPage(page)))
}

// Region returns the latest fragment of one region, 204 while it has not been rendered yet
func (controller *DashboardController) Region(c echo.Context) error {
	region, ok := model.ParseRegion(c.Param("region"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Region not found"})
	}

	fragment, found, err := controller.useCase.Fragment(c.Request().Context(), region)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !found {
		return c.NoContent(http.StatusNoContent)
	}
	return c.HTML(http.StatusOK, fragment.HTML)
}

// Refresh godoc
// @Summary Refresh the dashboard
// @Description Start a full refresh cycle without waiting for it
// @Tags dashboard
// @Produce json
// @Success 202 {object} map[string]string "Refresh scheduled"
// @Router /refresh [post]
func (controller *DashboardController) Refresh(c echo.Context) error {
	// Execute in a separate goroutine to avoid blocking the request
	go func() {
		controller.useCase.RefreshAll(context.Background())
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Dashboard refresh scheduled successfully"})
}

// Analyze godoc
// @Summary Analyze vineyard conditions of a city
// @Description Trigger the backend analysis of one city and refresh the alerts regions on success
// @Tags dashboard
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} model.Notification "Number of generated alerts"
// @Failure 400 {object} model.Notification "Malformed city name"
// @Failure 502 {object} model.Notification "Backend failure"
// @Router /cities/{name}/analyze [post]
func (controller *DashboardController) Analyze(c echo.Context) error {
	cityName, err := pathParam(c, "name")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.Notification{Message: msg.GetMessage("action.invalid-city", c.Param("name"))})
	}
	return notify(c, controller.useCase.Analyze(c.Request().Context(), cityName))
}

// Acknowledge godoc
// @Summary Acknowledge an alert
// @Description Mark one alert as resolved and refresh the alerts regions on success
// @Tags dashboard
// @Produce json
// @Param id path int true "Alert id"
// @Success 200 {object} model.Notification "Alert acknowledged"
// @Failure 400 {object} model.Notification "Malformed alert id"
// @Failure 502 {object} model.Notification "Backend failure"
// @Router /alerts/{id}/acknowledge [post]
func (controller *DashboardController) Acknowledge(c echo.Context) error {
	alertID, ok := parseAlertID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, model.Notification{Message: msg.GetMessage("action.invalid-alert-id", c.Param("id"))})
	}
	return notify(c, controller.useCase.Acknowledge(c.Request().Context(), alertID))
}

// Deactivate godoc
// @Summary Deactivate an alert
// @Description Switch one alert off without acknowledging it and refresh the alerts regions on success
// @Tags dashboard
// @Produce json
// @Param id path int true "Alert id"
// @Success 200 {object} model.Notification "Alert deactivated"
// @Failure 400 {object} model.Notification "Malformed alert id"
// @Failure 502 {object} model.Notification "Backend failure"
// @Router /alerts/{id}/deactivate [post]
func (controller *DashboardController) Deactivate(c echo.Context) error {
	alertID, ok := parseAlertID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusBadRequest, model.Notification{Message: msg.GetMessage("action.invalid-alert-id", c.Param("id"))})
	}
	return notify(c, controller.useCase.Deactivate(c.Request().Context(), alertID))
}

// Collect godoc
// @Summary Force a collection round
// @Description Ask the backend to collect weather for every city, then refresh the status and cities regions
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Notification "Number of collected cities"
// @Failure 502 {object} model.Notification "Backend failure"
// @Router /collect [post]
func (controller *DashboardController) Collect(c echo.Context) error {
	return notify(c, controller.useCase.Collect(c.Request().Context()))
}

func (controller *DashboardController) fragment(ctx context.Context, region model.Region) template.HTML {
	fragment, found, err := controller.useCase.Fragment(ctx, region)
	if err != nil {
		log.Errorw("failed to read region", "region", region, "error", err)
		return ""
	}
	if !found {
		return ""
	}
	// Fragments are produced by the view package and already escaped
	return template.HTML(fragment.HTML)
}

func notify(c echo.Context, notification model.Notification) error {
	if !notification.Success {
		return c.JSON(http.StatusBadGateway, notification)
	}
	return c.JSON(http.StatusOK, notification)
}

// pathParam returns a path parameter unescaped. Echo routes on the raw path, and leaves parameters escaped, when the request URL keeps one.
func pathParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func parseAlertID(raw string) (int64, bool) {
	if raw == "" || !numberutils.IsDigits(raw) {
		return 0, false
	}
	alertID, err := numberutils.ToInt64WithError(raw)
	if err != nil || !numberutils.IsInt64Positive(alertID) {
		return 0, false
	}
	return alertID, true
}
