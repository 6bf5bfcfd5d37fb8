package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Success bool   `json:"success"`
	Level   string `json:"level"`
	Error   string `json:"error"`
}

func TestRequest_DecodesSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/alerts", r.URL.Path)
		require.Equal(t, "7", r.URL.Query().Get("city_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"level":"médio"}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/api/", ClientOptions{})
	successResp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("alerts").
		WithQueryParams(map[string]string{"city_id": "7"}).
		WithSuccessResp(&payload{}).
		Execute()

	require.NoError(t, err)
	require.Nil(t, errResp)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, &payload{Success: true, Level: "médio"}, successResp)
}

func TestRequest_DecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Alerta não encontrado"}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, status, err := client.Request().
		WithMethod(POST).
		WithPath("/alerts/9/acknowledge").
		WithSuccessResp(&payload{}).
		WithErrorResp(&payload{}).
		Execute()

	require.EqualError(t, err, "http error: status 404")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, &payload{Error: "Alerta não encontrado"}, errResp)
}

func TestRequest_ConvertsDeclaredCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=iso-8859-1")
		// "médio" encoded as latin-1
		_, _ = w.Write([]byte("{\"success\":true,\"level\":\"m\xe9dio\"}"))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	successResp, _, _, err := client.Request().WithPath("/alerts").WithSuccessResp(&payload{}).Execute()

	require.NoError(t, err)
	require.Equal(t, "médio", successResp.(*payload).Level)
}

func TestRequest_FailsOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<html>oops</html>")
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Request().WithPath("/weather/status").WithSuccessResp(&payload{}).Execute()

	require.Error(t, err)
	require.Equal(t, http.StatusOK, status)
}

func TestRequest_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHttpClient(url, ClientOptions{})
	_, _, status, err := client.Request().WithPath("/weather/status").WithSuccessResp(&payload{}).Execute()

	require.Error(t, err)
	require.Zero(t, status)
}

func TestBuildURL(t *testing.T) {
	client := NewHttpClient("http://127.0.0.1:5000/api/", ClientOptions{})

	require.Equal(t, "http://127.0.0.1:5000/api", client.BaseURL())
	require.Equal(t, "http://127.0.0.1:5000/api/weather/status", client.buildURL("weather/status"))
	require.Equal(t, "http://127.0.0.1:5000/api/alerts", client.buildURL("/alerts"))
}
