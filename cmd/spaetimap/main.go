package main

import (
	"context"
	"log/slog"
	"os"

	"spaetimap/config"
	"spaetimap/internal/delivery"
	"spaetimap/internal/delivery/http"
	"spaetimap/internal/delivery/http/middleware"
	"spaetimap/internal/delivery/http/router/handler"
	"spaetimap/internal/infra/auth"
	logs "spaetimap/internal/infra/log"
	"spaetimap/internal/infra/persistence/postgres"
	"spaetimap/internal/infra/storage"
	"spaetimap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSpatiRepository,
			postgres.NewAmenityRepository,
			postgres.NewMoodRepository,
			postgres.NewAdminRepository,
			postgres.NewNewsletterRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSpatiService,
			impl.NewAmenityService,
			impl.NewMoodService,
			impl.NewAuthService,
			impl.NewNewsletterService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSpatiHandler,
			handler.NewAmenityHandler,
			handler.NewMoodHandler,
			handler.NewAuthHandler,
			handler.NewNewsletterHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
