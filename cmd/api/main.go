package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"petbnb/internal/config"
	"petbnb/internal/gateway"
	"petbnb/internal/middleware"
	"petbnb/internal/modules/booking"
	"petbnb/internal/modules/dashboard"
	"petbnb/internal/modules/realtime"
	"petbnb/internal/pkg/logger"
	"petbnb/internal/pkg/response"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	gw := gateway.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, zlog)

	hub := realtime.NewHub()
	defer hub.Close()

	dashboardService := dashboard.NewService(gw, zlog, cfg.HistoryLimit)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	bookingService := booking.NewService(gw, hub, zlog)
	bookingHandler := booking.NewHandler(bookingService)

	realtimeHandler := realtime.NewHandler(hub, zlog)

	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	r.GET("/health", healthHandler(gw))

	v1 := r.Group("/api/v1")
	{
		// Websocket auth rides in the query string, not the header.
		realtimeHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.BearerToken(zlog))
		{
			dashboardHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	zlog.Info("starting api",
		zap.String("port", cfg.Port),
		zap.String("upstream", cfg.UpstreamBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// healthHandler reports this service and its upstream in one probe.
func healthHandler(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		upstream := "ok"
		if err := gw.Health(c.Request.Context()); err != nil {
			upstream = "unreachable"
		}
		response.Success(c, http.StatusOK, gin.H{
			"status":   "ok",
			"upstream": upstream,
		})
	}
}
