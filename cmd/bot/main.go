package main

import (
	"context"
	"log/slog"
	"os"

	"marketbot/config"
	"marketbot/internal/delivery"
	"marketbot/internal/delivery/api"
	"marketbot/internal/delivery/api/middleware"
	"marketbot/internal/delivery/api/router/handler"
	"marketbot/internal/domain/service"
	"marketbot/internal/infra/auth"
	"marketbot/internal/infra/dedupe"
	logs "marketbot/internal/infra/log"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/infra/persistence/mongo"
	"marketbot/internal/infra/pubsub"
	"marketbot/internal/infra/qrcode"
	"marketbot/internal/infra/telegram"
	"marketbot/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
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
		injectMiddleware(),
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
	)
}

func injectRepo() fx.Option {
	return mongo.Module
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			dedupe.New,
			telegram.NewBotProvider,
			telegram.NewMessenger,
			newQRCodeService,
			func(p *telegram.BotProvider) handler.BotInitializer { return p },
		),
	)
}

// newQRCodeService creates the link QR renderer, with defaults when the
// qrcode section is missing
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	botUsername := ""
	if cfg.Telegram != nil {
		botUsername = cfg.Telegram.BotUsername
	}
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(botUsername, defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(botUsername, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationComposer,
			impl.NewListingQueryService,
			impl.NewAccountLinkService,
			impl.NewCommandService,
			impl.NewEventService,
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
			handler.NewWebhookHandler,
			handler.NewEventHandler,
			handler.NewLinkHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
