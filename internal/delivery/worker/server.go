package worker

import (
	"log/slog"
	"net/http"

	"servicehub/config"
	"servicehub/internal/delivery"
	"servicehub/internal/delivery/middleware"
	"servicehub/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const pushBodyLimit = "1M"

// ServerParams holds dependencies for the receipt worker server.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer exposes the Pub/Sub push endpoint that turns placed orders into receipts.
func NewServer(params ServerParams) delivery.Delivery {
	e := delivery.NewEcho()
	e.Use(middleware.Common(params.Logger, params.Cfg)...)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	srv := &delivery.EchoServer{
		Name:   "receipt worker",
		Port:   params.Cfg.WorkerPort(),
		Echo:   e,
		Logger: params.Logger,
	}
	params.Lc.Append(fx.StopHook(srv.Shutdown))

	return srv
}
