package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/domain/repository"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"
	"marketbot/internal/usecase"

	"go.uber.org/fx"
)

// accountLinkService implements the AccountLinkUsecase interface.
type accountLinkService struct {
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	baseURL       string
	logger        *slog.Logger
	now           func() time.Time
}

// AccountLinkServiceParams holds dependencies for AccountLinkService, injected by Fx.
type AccountLinkServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAccountLinkService is the constructor for accountLinkService.
func NewAccountLinkService(params AccountLinkServiceParams) usecase.AccountLinkUsecase {
	return &accountLinkService{
		userRepo:      params.UserRepo,
		qrcodeService: params.QRCodeService,
		baseURL:       siteBaseURL(params.Config),
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *accountLinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleStart redeems the link token carried by a /start payload.
func (srv *accountLinkService) HandleStart(ctx context.Context, update entity.InboundUpdate, payload string) entity.OutboundMessage {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return welcomeMessage(update.SenderName, srv.baseURL)
	}

	identity := entity.ChatIdentity{ChatUserID: chatUserID(update)}
	if update.SenderUsername != "" {
		username := update.SenderUsername
		identity.ChatUsername = &username
	}

	user, err := srv.userRepo.LinkChatIdentity(ctx, payload, identity, srv.now())
	switch {
	case errors.Is(err, repository.ErrLinkTokenNotFound):
		srv.log(ctx).Info("[AccountLink] Link token rejected", slog.String("chat_user_id", identity.ChatUserID))

		return entity.OutboundMessage{
			Text: "⚠️ <b>No pudimos vincular tu cuenta.</b>\n\n" +
				"El enlace no es válido o ya expiró. Genera uno nuevo desde tu perfil en el sitio e inténtalo otra vez.",
			Buttons: [][]entity.Button{profileButton(srv.baseURL)},
		}

	case err != nil:
		srv.log(ctx).Error("[AccountLink] Failed to link chat identity",
			slog.String("chat_user_id", identity.ChatUserID),
			slog.Any("error", err),
		)

		return entity.OutboundMessage{Text: "❌ Ocurrió un error vinculando tu cuenta. Por favor, intenta de nuevo en unos minutos."}
	}

	srv.log(ctx).Info("[AccountLink] Chat identity linked",
		slog.String("user_id", user.ID),
		slog.String("chat_user_id", identity.ChatUserID),
	)

	return entity.OutboundMessage{
		Text: fmt.Sprintf("✅ <b>¡Cuenta vinculada, %s!</b>\n\n", esc(user.DisplayName())) +
			"A partir de ahora recibirás aquí las novedades de tus publicaciones y favoritos.\n" +
			"Usa /notificaciones para configurar tus alertas.",
		Buttons: [][]entity.Button{profileButton(srv.baseURL)},
	}
}

// LinkQRCode renders the deep link of a link token as a PNG QR code.
func (srv *accountLinkService) LinkQRCode(token string) ([]byte, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrLinkTokenInvalid.WrapMessage("link token is required")
	}

	png, err := srv.qrcodeService.GenerateLinkQR(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed, err.Error())
	}

	return png, nil
}

func siteBaseURL(cfg *config.Config) string {
	if cfg == nil || cfg.Site == nil {
		return ""
	}

	return strings.TrimRight(cfg.Site.BaseURL, "/")
}
