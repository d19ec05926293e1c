package api

import (
	"context"
	"log/slog"

	"servicehub/config"
	"servicehub/internal/delivery"
	apimiddleware "servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/router"
	"servicehub/internal/delivery/api/validator"
	"servicehub/internal/delivery/middleware"
	"servicehub/internal/domain/constants"
	"servicehub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RateLimiter  *apimiddleware.RateLimiter
	RouterParams router.RouterParams
}

// NewServer assembles the public API: shared middleware, metrics, CORS, body
// limits, the error handler, the validator and every route.
func NewServer(params ServerParams) delivery.Delivery {
	cfg := params.Cfg

	e := delivery.NewEcho()
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(middleware.Common(params.Logger, cfg)...)
	e.Use(
		apimiddleware.Metrics(params.Metrics),
		echomiddleware.CORSWithConfig(corsConfig(cfg)),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterMetricsRoute(e)

	srv := &delivery.EchoServer{
		Name:   "api",
		Port:   cfg.HTTP.Port,
		Echo:   e,
		Logger: params.Logger,
		H2C:    &http2.Server{IdleTimeout: cfg.HTTP.Timeouts.IdleTimeout},
	}

	stopSweeper := make(chan struct{})
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go params.RateLimiter.RunSweeper(params.RateLimiter.IdleTTL(), stopSweeper)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopSweeper)

			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// corsConfig allows the configured origins, or any origin when none is set.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	corsCfg := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	corsCfg.AllowHeaders = []string{
		echo.HeaderOrigin,
		echo.HeaderContentType,
		echo.HeaderAccept,
		echo.HeaderAuthorization,
		constants.HeaderUserEmail,
	}
	corsCfg.ExposeHeaders = []string{echo.HeaderXRequestID, echo.HeaderContentDisposition}

	return corsCfg
}
