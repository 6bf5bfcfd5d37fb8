package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"winecast-dashboard/internal/application/controller"
	"winecast-dashboard/internal/application/middleware"
	"winecast-dashboard/internal/application/schedule"
	"winecast-dashboard/internal/application/view"
	"winecast-dashboard/internal/domain/gateway/api"
	"winecast-dashboard/internal/domain/gateway/region"
	"winecast-dashboard/internal/domain/usecase/dashboard"
	"winecast-dashboard/internal/domain/usecase/health"
	"winecast-dashboard/pkg/http"
	"winecast-dashboard/pkg/log"
	"winecast-dashboard/pkg/msg"
	"winecast-dashboard/pkg/redis"
	"winecast-dashboard/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	app := e.Group(contextPath)

	// Init Gateways
	backendGateway := api.NewBackendGateway(resource.GetString("app.backend.base-url"), http.ClientOptions{
		ReadTimeout:       resource.GetDuration("app.backend.read-timeout"),
		ConnectionTimeout: resource.GetDuration("app.backend.connection-timeout"),
	})
	regionGateway, closeRegionGateway := newRegionGateway()
	defer closeRegionGateway()

	// Init UseCase
	dashboardUseCase := dashboard.NewDashboardUseCase(backendGateway, regionGateway, view.NewRenderer())
	healthUseCase := health.NewHealthUseCase(backendGateway, regionGateway)

	// Init Controller
	refreshInterval := resource.GetDuration("app.dashboard.refresh-interval")
	dashboardController := controller.NewDashboardController(app, dashboardUseCase, contextPath, resource.GetDuration("app.dashboard.poll-interval"))
	healthController := controller.NewHealthController(app, healthUseCase)

	// Init Routes
	dashboardController.InitDashboardRoutes(middleware.ActionRateLimiter(resource.GetFloat64("app.server.action-rate-limit")))
	healthController.InitHealthRoutes()

	// Init Schedule
	dashboardScheduler, err := schedule.NewDashboardScheduler(dashboardUseCase, refreshInterval)
	if err != nil {
		log.Fatalf("Failed to create dashboard scheduler: %v", err)
	}
	if err := dashboardScheduler.InitDashboardScheduleTasks(); err != nil {
		log.Fatalf("Failed to schedule dashboard refresh: %v", err)
	}
	collectScheduler := schedule.NewCollectScheduler(dashboardUseCase, resource.GetString("app.dashboard.collect.cron"))
	collectScheduler.InitCollectScheduleTasks()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	collectScheduler.Stop()
	if err := dashboardScheduler.Stop(); err != nil {
		log.Errorf("Failed to stop dashboard scheduler: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to stop server: %v", err)
	}
	log.Info(msg.GetMessage("app.stop"))
}

// newRegionGateway selects the region store from app.region-store.type
func newRegionGateway() (region.RegionGateway, func()) {
	if resource.GetString("app.region-store.type") != "redis" {
		return region.NewMemoryRegionGateway(), func() {}
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(region.RegionCacheName, resource.GetDuration("app.redis.region-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatalf("Failed to create redis client: %v", err)
	}
	if err := client.Ping(context.Background()); err != nil {
		log.Warnf("Redis is not reachable yet: %v", err)
	}

	return region.NewRedisRegionGateway(client), func() {
		if err := client.Close(); err != nil {
			log.Errorf("Failed to close redis client: %v", err)
		}
	}
}
