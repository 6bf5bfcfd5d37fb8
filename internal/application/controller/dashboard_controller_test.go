package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"winecast-dashboard/internal/domain/model"
)

// stubUseCase answers actions with fixed notifications and records the arguments it receives.
type stubUseCase struct {
	mutex        sync.Mutex
	fragments    map[model.Region]model.Fragment
	notification model.Notification
	refreshed    chan struct{}
	cityName     string
	alertID      int64
}

func newStubUseCase() *stubUseCase {
	return &stubUseCase{
		fragments: make(map[model.Region]model.Fragment),
		refreshed: make(chan struct{}, 1),
	}
}

func (u *stubUseCase) RefreshAll(context.Context) { u.refreshed <- struct{}{} }

func (u *stubUseCase) RefreshStatus(context.Context, string) {}

func (u *stubUseCase) RefreshCities(context.Context, string) {}

func (u *stubUseCase) RefreshAlerts(context.Context, string) {}

func (u *stubUseCase) Analyze(_ context.Context, cityName string) model.Notification {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	u.cityName = cityName
	return u.notification
}

func (u *stubUseCase) Acknowledge(_ context.Context, alertID int64) model.Notification {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	u.alertID = alertID
	return u.notification
}

func (u *stubUseCase) Deactivate(_ context.Context, alertID int64) model.Notification {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	u.alertID = alertID
	return u.notification
}

func (u *stubUseCase) Collect(context.Context) model.Notification {
	return u.notification
}

func (u *stubUseCase) Fragment(_ context.Context, region model.Region) (model.Fragment, bool, error) {
	fragment, ok := u.fragments[region]
	return fragment, ok, nil
}

func newDashboardServer(useCase *stubUseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("/dashboard")
	NewDashboardController(api, useCase, "/dashboard", time.Second).InitDashboardRoutes()
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decodeNotification(t *testing.T, rec *httptest.ResponseRecorder) model.Notification {
	t.Helper()
	var notification model.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notification))
	return notification
}

func TestDashboardController_Page(t *testing.T) {
	useCase := newStubUseCase()
	useCase.fragments[model.RegionStatus] = model.Fragment{Region: model.RegionStatus, HTML: `<span class="marker">ok</span>`}
	e := newDashboardServer(useCase)

	rec := serve(e, http.MethodGet, "/dashboard/")

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	require.Equal(t, "ok", doc.Find("#status .marker").Text())
	require.Empty(t, strings.TrimSpace(doc.Find("#cities").Text()))
}

func TestDashboardController_Region(t *testing.T) {
	useCase := newStubUseCase()
	useCase.fragments[model.RegionCities] = model.Fragment{Region: model.RegionCities, HTML: "<div>Porto</div>"}
	e := newDashboardServer(useCase)

	rec := serve(e, http.MethodGet, "/dashboard/regions/cities")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<div>Porto</div>", rec.Body.String())

	require.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/dashboard/regions/status").Code)
	require.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/dashboard/regions/unknown").Code)
}

func TestDashboardController_Refresh(t *testing.T) {
	useCase := newStubUseCase()
	e := newDashboardServer(useCase)

	rec := serve(e, http.MethodPost, "/dashboard/refresh")

	require.Equal(t, http.StatusAccepted, rec.Code)
	select {
	case <-useCase.refreshed:
	case <-time.After(time.Second):
		t.Fatal("refresh was not triggered")
	}
}

func TestDashboardController_ActionStatusCodes(t *testing.T) {
	useCase := newStubUseCase()
	e := newDashboardServer(useCase)

	useCase.notification = model.Notification{Success: true, Message: "Alerta reconhecido com sucesso!"}
	rec := serve(e, http.MethodPost, "/dashboard/alerts/7/acknowledge")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, useCase.notification, decodeNotification(t, rec))
	require.Equal(t, int64(7), useCase.alertID)

	useCase.notification = model.Notification{Success: false, Message: "Erro ao reconhecer alerta"}
	rec = serve(e, http.MethodPost, "/dashboard/alerts/8/deactivate")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "Erro ao reconhecer alerta", decodeNotification(t, rec).Message)
	require.Equal(t, int64(8), useCase.alertID)

	rec = serve(e, http.MethodPost, "/dashboard/collect")
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDashboardController_AnalyzeUnescapesCity(t *testing.T) {
	useCase := newStubUseCase()
	useCase.notification = model.Notification{Success: true, Message: "ok"}
	e := newDashboardServer(useCase)

	for raw, expected := range map[string]string{
		"Vila%20Real":                   "Vila Real",
		"Peso%20da%20R%C3%A9gua":        "Peso da Régua",
		"S%C3%A3o%20Jo%C3%A3o%20d'Arco": "São João d'Arco",
		"A%2FB":                         "A/B",
	} {
		rec := serve(e, http.MethodPost, "/dashboard/cities/"+raw+"/analyze")

		require.Equal(t, http.StatusOK, rec.Code, raw)
		require.Equal(t, expected, useCase.cityName, raw)
	}
}

func TestDashboardController_AnalyzeRejectsMalformedCity(t *testing.T) {
	useCase := newStubUseCase()
	e := newDashboardServer(useCase)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/cities/x/analyze", nil)
	req.URL.RawPath = "/dashboard/cities/%ZZ/analyze"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeNotification(t, rec).Message, "%ZZ")
	require.Empty(t, useCase.cityName)
}

func TestDashboardController_InvalidAlertID(t *testing.T) {
	e := newDashboardServer(newStubUseCase())

	for _, id := range []string{"abc", "-1", "0", "99999999999999999999"} {
		rec := serve(e, http.MethodPost, "/dashboard/alerts/"+id+"/acknowledge")
		require.Equal(t, http.StatusBadRequest, rec.Code, id)
		notification := decodeNotification(t, rec)
		require.False(t, notification.Success)
		require.Contains(t, notification.Message, id)
	}
}
