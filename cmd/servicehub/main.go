package main

import (
	"context"
	"log/slog"
	"os"

	"servicehub/config"
	"servicehub/internal/delivery"
	"servicehub/internal/delivery/api"
	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/router/handler"
	"servicehub/internal/infra/auth"
	"servicehub/internal/infra/export"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/metrics"
	"servicehub/internal/infra/persistence/postgres"
	"servicehub/internal/infra/pubsub"
	"servicehub/internal/infra/qrcode"
	"servicehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewServiceRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewReviewRepository,
			postgres.NewReceiptRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			qrcode.NewReceiptEncoder,
			export.NewXLSXExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewReviewHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
