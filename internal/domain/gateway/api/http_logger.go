package api

import (
	"go.uber.org/zap"

	"winecast-dashboard/pkg/http"
	"winecast-dashboard/pkg/log"
)

type zapHTTPLogger struct{}

var _ http.HTTPLogger = zapHTTPLogger{}

// NewZapHTTPLogger logs backend calls through the application logger
func NewZapHTTPLogger() http.HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("Backend request", zap.String("method", method), zap.String("url", url))
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, _ string, latency int64) {
	log.Debug("Backend response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (zapHTTPLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("Backend call failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
