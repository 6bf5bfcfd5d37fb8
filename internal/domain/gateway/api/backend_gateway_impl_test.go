package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"winecast-dashboard/internal/domain/entity"
	pkghttp "winecast-dashboard/pkg/http"
)

func newGatewayUnderTest(t *testing.T, handler http.HandlerFunc) BackendGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendGateway(server.URL+"/api", pkghttp.ClientOptions{})
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestFetchStatus(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/weather/status", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		respond(w, http.StatusOK, `{"success":true,"status":{"collecting":true,"cities_monitored":3,"recent_records":42,"api_key_configured":false}}`)
	})

	status, err := gateway.FetchStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, entity.SystemStatus{Collecting: true, CitiesMonitored: 3, RecentRecords: 42}, status)
}

func TestFetchCitiesAndWeather(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/weather/cities":
			respond(w, http.StatusOK, `{"success":true,"cities":[{"name":"Porto","region":"Norte","lat":41.15,"lon":-8.61}]}`)
		case "/api/weather/current":
			respond(w, http.StatusOK, `{"success":true,"data":[{"name":"Porto","main":{"temp":18.6,"humidity":77},"wind":{"speed":3.1},"weather":[{"description":"céu limpo"}]}]}`)
		default:
			respond(w, http.StatusNotFound, `{"error":"not found"}`)
		}
	})

	cities, err := gateway.FetchCities(context.Background())
	require.NoError(t, err)
	require.Equal(t, []entity.City{{Name: "Porto", Region: "Norte", Lat: 41.15, Lon: -8.61}}, cities)

	observations, err := gateway.FetchCurrentWeather(context.Background())
	require.NoError(t, err)
	require.Len(t, observations, 1)
	require.Equal(t, 18.6, observations[0].Main.Temp)
	require.Equal(t, "céu limpo", observations[0].Description())
}

func TestAnalyze_EscapesCityName(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/weather/analyze/Vila%20Real", r.URL.EscapedPath())
		respond(w, http.StatusOK, `{"success":true,"alerts":[{"id":1,"city_name":"Vila Real","alert_type":"rega","level":"alto"}]}`)
	})

	alerts, err := gateway.Analyze(context.Background(), "Vila Real")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, entity.AlertLevelHigh, alerts[0].Level)
}

func TestCall_ErrorStatusIsApplicationFailure(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, `{"error":"Dados não encontrados para Faro"}`)
	})

	_, err := gateway.Analyze(context.Background(), "Faro")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrApplication))
	require.False(t, errors.Is(err, ErrTransport))
	require.Equal(t, "Dados não encontrados para Faro", ReasonOf(err))
}

func TestCall_MissingSuccessFlagIsApplicationFailure(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/alerts/12/acknowledge", r.URL.Path)
		respond(w, http.StatusOK, `{"success":false}`)
	})

	err := gateway.Acknowledge(context.Background(), 12)
	require.True(t, errors.Is(err, ErrApplication))
	require.Empty(t, ReasonOf(err))
}

func TestCall_NonJSONBodyIsTransportFailure(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "<h1>Internal Server Error</h1>")
	})

	_, err := gateway.FetchAlerts(context.Background())
	require.True(t, errors.Is(err, ErrTransport))

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, "/alerts", fetchErr.Path)
}

func TestCall_UnreachableBackendIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	gateway := NewBackendGateway(baseURL, pkghttp.ClientOptions{})
	_, err := gateway.FetchStatus(context.Background())
	require.True(t, errors.Is(err, ErrTransport))
}

func TestDeactivateAndCollect(t *testing.T) {
	gateway := newGatewayUnderTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		switch r.URL.Path {
		case "/api/alerts/4/deactivate":
			respond(w, http.StatusOK, `{"success":true,"message":"Alerta desativado com sucesso"}`)
		case "/api/weather/collect":
			respond(w, http.StatusOK, `{"success":true,"cities_collected":["Porto","Lisboa"]}`)
		}
	})

	require.NoError(t, gateway.Deactivate(context.Background(), 4))

	collected, err := gateway.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Porto", "Lisboa"}, collected)
}
