package server

import (
	"net/http"

	"github.com/amankumarsingh77/reelfetch/internal/middleware"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	historyHttp "github.com/amankumarsingh77/reelfetch/internal/history/delivery/http"
	historyRepository "github.com/amankumarsingh77/reelfetch/internal/history/repository"
	historyUsecase "github.com/amankumarsingh77/reelfetch/internal/history/usecase"
	jobsHttp "github.com/amankumarsingh77/reelfetch/internal/jobs/delivery/http"
	jobsRepository "github.com/amankumarsingh77/reelfetch/internal/jobs/repository"
	jobsUsecase "github.com/amankumarsingh77/reelfetch/internal/jobs/usecase"
	releasesHttp "github.com/amankumarsingh77/reelfetch/internal/releases/delivery/http"
	releasesRepository "github.com/amankumarsingh77/reelfetch/internal/releases/repository"
	releasesUsecase "github.com/amankumarsingh77/reelfetch/internal/releases/usecase"
	streamHttp "github.com/amankumarsingh77/reelfetch/internal/stream/delivery/http"
	streamRepository "github.com/amankumarsingh77/reelfetch/internal/stream/repository"
	streamUsecase "github.com/amankumarsingh77/reelfetch/internal/stream/usecase"
	titlesHttp "github.com/amankumarsingh77/reelfetch/internal/titles/delivery/http"
	titlesRepository "github.com/amankumarsingh77/reelfetch/internal/titles/repository"
	titlesUsecase "github.com/amankumarsingh77/reelfetch/internal/titles/usecase"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	tmdbRepo := titlesRepository.NewTMDBRepo(s.cfg.TMDB)
	tRedisRepo := titlesRepository.NewTitlesRedisRepo(s.redisClient)
	newznabRepo := releasesRepository.NewNewznabRepo(s.cfg.Newznab)
	rRedisRepo := releasesRepository.NewReleasesRedisRepo(s.redisClient)
	jRepo := jobsRepository.NewJobsRepo(s.db)
	jRedisRepo := jobsRepository.NewJobsRedisRepo(s.redisClient)
	sAWSRepo := streamRepository.NewAwsRepository(s.s3Client)
	hRepo := historyRepository.NewHistoryRepo(s.db)

	titlesUC := titlesUsecase.NewTitlesUseCase(s.cfg, tmdbRepo, tRedisRepo, s.logger)
	releasesUC := releasesUsecase.NewReleasesUseCase(s.cfg, newznabRepo, rRedisRepo, titlesUC, s.logger)
	jobsUC := jobsUsecase.NewJobsUseCase(s.cfg, jRepo, jRedisRepo, titlesUC, releasesUC, s.logger)
	streamUC := streamUsecase.NewStreamUseCase(s.cfg, jRepo, sAWSRepo, s.logger)
	historyUC := historyUsecase.NewHistoryUseCase(s.cfg, hRepo, s.logger)

	titlesHandlers := titlesHttp.NewTitlesHandler(titlesUC, s.logger)
	releasesHandlers := releasesHttp.NewReleasesHandler(releasesUC, s.logger)
	jobsHandlers := jobsHttp.NewJobsHandler(jobsUC, s.logger)
	streamHandlers := streamHttp.NewStreamHandler(streamUC, s.logger)
	historyHandlers := historyHttp.NewHistoryHandler(historyUC, s.logger)

	origins := s.cfg.Server.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	mw := middleware.NewMiddlewareManager(s.cfg, origins, s.logger)

	if s.cfg.Worker.CallbackSecret == "" {
		s.logger.Warn("worker.callbackSecret is empty, progress callbacks are accepted without a token")
	}

	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.Recover())
	e.Use(mw.RequestLoggerMiddleware())
	e.Use(mw.CORSMiddleware())
	e.Use(mw.RequestTimeoutMiddleware())
	if s.cfg.Metrics.Enabled {
		e.Use(mw.MetricsMiddleware)
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	e.Use(echo.WrapMiddleware(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, s.cfg.Telemetry.ServiceName)
	}))

	e.GET("/health", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})

	v1 := e.Group("/api/v1")
	titlesGroup := v1.Group("/titles")
	jobsGroup := v1.Group("/jobs")
	internalGroup := v1.Group("/internal")
	historyGroup := v1.Group("/history")
	streamGroup := v1.Group("/stream")

	titlesHttp.MapTitlesRoutes(titlesGroup, titlesHandlers)
	releasesHttp.MapReleasesRoutes(titlesGroup, releasesHandlers)
	jobsHttp.MapJobsRoutes(titlesGroup, jobsGroup, internalGroup, jobsHandlers, mw)
	streamHttp.MapStreamRoutes(titlesGroup, streamGroup, streamHandlers)
	historyHttp.MapHistoryRoutes(historyGroup, historyHandlers)

	rootStream := e.Group("/stream")
	rootStream.GET("/:jobId", streamHandlers.ServeStream())
	rootStream.HEAD("/:jobId", streamHandlers.ServeStream())

	return nil
}
