package main

import (
	"context"
	"log/slog"
	"os"

	"marketbot/config"
	"marketbot/internal/delivery"
	"marketbot/internal/delivery/worker"
	"marketbot/internal/delivery/worker/handler"
	"marketbot/internal/infra/dedupe"
	logs "marketbot/internal/infra/log"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/infra/persistence/mongo"
	"marketbot/internal/infra/persistence/postgres"
	"marketbot/internal/infra/telegram"
	"marketbot/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
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
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		mongo.Module,
		fx.Provide(
			postgres.NewBroadcastRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			dedupe.New,
			telegram.NewBotProvider,
			telegram.NewMessenger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationComposer,
			impl.NewListingQueryService,
			impl.NewBroadcastService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
