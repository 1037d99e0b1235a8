package main

import (
	"context"
	"log/slog"
	"os"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/delivery/api"
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/infra/auth"
	logs "eventhub/internal/infra/log"
	"eventhub/internal/infra/persistence/postgres"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/infra/qrcode"
	"eventhub/internal/infra/storage"
	"eventhub/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			storage.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewEventRepository,
			postgres.NewGuestRepository,
			postgres.NewBookingRepository,
			postgres.NewVendorRepository,
			postgres.NewCategoryRepository,
			postgres.NewServiceRepository,
			postgres.NewPortfolioRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewEventService,
			impl.NewBookingService,
			impl.NewGuestService,
			impl.NewVendorService,
			impl.NewCatalogService,
			impl.NewPortfolioService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewEventHandler,
			handler.NewBookingHandler,
			handler.NewGuestHandler,
			handler.NewVendorHandler,
			handler.NewCatalogHandler,
			handler.NewPortfolioHandler,
			handler.NewReviewHandler,
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
