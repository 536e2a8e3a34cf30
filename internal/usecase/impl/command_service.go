package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/repository"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/usecase"

	"go.uber.org/fx"
)

const (
	commandPrefix     = "/"
	statsWindow       = 7 * 24 * time.Hour
	searchErrorText   = "❌ Ocurrió un error en la búsqueda. Por favor, intenta con otros términos."
	genericErrorText  = "❌ Ocurrió un error procesando tu solicitud. Por favor, intenta de nuevo en unos minutos."
	unknownOptionText = "🤔 Esta opción no está disponible. Usa /help para ver lo que puedo hacer."
)

type commandHandler func(ctx context.Context, update entity.InboundUpdate, args string) []entity.OutboundMessage

type commandService struct {
	accountLink usecase.AccountLinkUsecase
	listings    usecase.ListingQueryUsecase
	composer    usecase.NotificationComposer
	messenger   service.Messenger
	userRepo    repository.UserRepository
	metrics     *metrics.Metrics
	logger      *slog.Logger
	site        config.SiteConfig
	baseURL     string
	now         func() time.Time

	commands map[string]commandHandler
}

// CommandServiceParams holds dependencies for CommandService, injected by Fx.
type CommandServiceParams struct {
	fx.In

	AccountLink usecase.AccountLinkUsecase
	Listings    usecase.ListingQueryUsecase
	Composer    usecase.NotificationComposer
	Messenger   service.Messenger
	UserRepo    repository.UserRepository
	Metrics     *metrics.Metrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCommandService creates the router for inbound chat updates.
func NewCommandService(params CommandServiceParams) usecase.CommandUsecase {
	srv := &commandService{
		accountLink: params.AccountLink,
		listings:    params.Listings,
		composer:    params.Composer,
		messenger:   params.Messenger,
		userRepo:    params.UserRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
		baseURL:     siteBaseURL(params.Config),
		now:         time.Now,
	}
	if params.Config != nil && params.Config.Site != nil {
		srv.site = *params.Config.Site
	}

	srv.commands = map[string]commandHandler{
		"/start":          srv.handleStart,
		"/help":           srv.handleHelp,
		"/buscar":         srv.handleSearch,
		"/nuevos":         srv.handleLatest,
		"/marcas":         srv.handleBrands,
		"/estado":         srv.handleStatus,
		"/notificaciones": srv.handleNotifications,
		"/estadisticas":   srv.handleStats,
		"/contacto":       srv.handleContact,
		"/web":            srv.handleWeb,
	}

	return srv
}

func (srv *commandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleUpdate answers one inbound update. Failures are logged and turned
// into replies; nothing is returned to the transport.
func (srv *commandService) HandleUpdate(ctx context.Context, update entity.InboundUpdate) {
	if update.IsCallback() {
		srv.handleCallback(ctx, update)

		return
	}

	text := strings.TrimSpace(update.Text)
	if text == "" || update.ChatID == "" {
		return
	}

	var replies []entity.OutboundMessage
	if strings.HasPrefix(text, commandPrefix) {
		replies = srv.dispatchCommand(ctx, update, text)
	} else {
		srv.metrics.CommandsHandled.WithLabelValues("text").Inc()
		replies = srv.handleFreeText(ctx, text)
	}

	srv.reply(ctx, update.ChatID, replies...)
}

func (srv *commandService) dispatchCommand(ctx context.Context, update entity.InboundUpdate, text string) []entity.OutboundMessage {
	name, args := splitCommand(text)

	handler, ok := srv.commands[name]
	if !ok {
		srv.metrics.CommandsHandled.WithLabelValues("unknown").Inc()

		return []entity.OutboundMessage{helpMessage(srv.baseURL)}
	}
	srv.metrics.CommandsHandled.WithLabelValues(strings.TrimPrefix(name, commandPrefix)).Inc()

	return handler(ctx, update, args)
}

// splitCommand separates "/cmd@BotName args" into "/cmd" and "args".
func splitCommand(text string) (string, string) {
	name, args, _ := strings.Cut(text, " ")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}

	return name, strings.TrimSpace(args)
}

func (srv *commandService) handleStart(ctx context.Context, update entity.InboundUpdate, args string) []entity.OutboundMessage {
	return []entity.OutboundMessage{srv.accountLink.HandleStart(ctx, update, args)}
}

func (srv *commandService) handleHelp(_ context.Context, _ entity.InboundUpdate, _ string) []entity.OutboundMessage {
	return []entity.OutboundMessage{helpMessage(srv.baseURL)}
}

func (srv *commandService) handleSearch(ctx context.Context, _ entity.InboundUpdate, args string) []entity.OutboundMessage {
	if args == "" {
		return []entity.OutboundMessage{{
			Text:    "🔎 Dime qué buscas, por ejemplo:\n/buscar Toyota Corolla\n/buscar precio max 15000",
			Buttons: quickSearchButtons(srv.baseURL),
		}}
	}

	parsed := parseFreeText(args)
	if parsed.Intent != intentSearch {
		query := strings.ToLower(args)
		parsed.Filter = entity.SearchFilter{Query: &query}
	}

	return srv.search(ctx, parsed.Filter)
}

func (srv *commandService) handleFreeText(ctx context.Context, text string) []entity.OutboundMessage {
	parsed := parseFreeText(text)

	switch parsed.Intent {
	case intentGreeting:
		return []entity.OutboundMessage{{
			Text:    "👋 ¡Hola! ¿Qué vehículo estás buscando? Escribe una marca, un modelo o un precio máximo.",
			Buttons: quickSearchButtons(srv.baseURL),
		}}
	case intentPricing:
		return []entity.OutboundMessage{{
			Text: "💵 Puedo buscar por precio máximo. Escribe por ejemplo <i>precio max 15000</i> " +
				"o <i>hasta 8.000</i> y te muestro lo que hay disponible.",
			Buttons: [][]entity.Button{{entity.URLButton("🌐 Ver precios en el sitio", srv.baseURL+"/vehiculos")}},
		}}
	case intentSelling:
		return []entity.OutboundMessage{{
			Text: "📝 Para vender tu vehículo publícalo en el sitio. Revisamos cada publicación " +
				"y te avisaremos por aquí cuando sea aprobada.",
			Buttons: [][]entity.Button{{entity.URLButton("➕ Publicar vehículo", srv.baseURL+"/vehiculos/nuevo")}},
		}}
	default:
		return srv.search(ctx, parsed.Filter)
	}
}

func (srv *commandService) search(ctx context.Context, filter entity.SearchFilter) []entity.OutboundMessage {
	listings, err := srv.listings.Search(ctx, filter)
	if err != nil {
		return []entity.OutboundMessage{{Text: searchErrorText}}
	}

	if len(listings) == 0 {
		return []entity.OutboundMessage{{
			Text: "😕 No encontré vehículos con esos criterios.\n\n" +
				"Sugerencias:\n• Revisa la ortografía\n• Usa términos más generales\n• Consulta las marcas disponibles con /marcas",
			Buttons: quickSearchButtons(srv.baseURL),
		}}
	}

	return srv.listReplies("🔎 <b>Resultados de tu búsqueda</b>", listings, srv.searchURL(filter))
}

// listReplies renders listings as one message, preceded by a count notice
// when they do not all fit.
func (srv *commandService) listReplies(title string, listings []*entity.ListingSummary, moreURL string) []entity.OutboundMessage {
	var replies []entity.OutboundMessage
	if len(listings) > constants.SearchDisplayLimit {
		replies = append(replies, entity.OutboundMessage{
			Text: fmt.Sprintf("📋 Encontré %d vehículos. Te muestro los %d más recientes:", len(listings), constants.SearchDisplayLimit),
		})
		listings = listings[:constants.SearchDisplayLimit]
	}

	lines := make([]string, 0, len(listings))
	for _, listing := range listings {
		lines = append(lines, srv.composer.SearchResultLine(listing))
	}

	return append(replies, entity.OutboundMessage{
		Text:    title + "\n\n" + strings.Join(lines, "\n\n"),
		Buttons: [][]entity.Button{{entity.URLButton("🌐 Ver todos en la web", moreURL)}},
	})
}

func (srv *commandService) searchURL(filter entity.SearchFilter) string {
	values := url.Values{}
	if filter.Query != nil {
		values.Set("q", *filter.Query)
	}
	if filter.MaxPrice != nil {
		values.Set("precioMax", fmt.Sprintf("%.0f", *filter.MaxPrice))
	}
	if filter.Year != nil {
		values.Set("anio", fmt.Sprintf("%d", *filter.Year))
	}

	if len(values) == 0 {
		return srv.baseURL + "/vehiculos"
	}

	return srv.baseURL + "/vehiculos?" + values.Encode()
}

func (srv *commandService) handleLatest(ctx context.Context, _ entity.InboundUpdate, _ string) []entity.OutboundMessage {
	listings, err := srv.listings.Latest(ctx, 0)
	if err != nil {
		return []entity.OutboundMessage{{Text: searchErrorText}}
	}
	if len(listings) == 0 {
		return []entity.OutboundMessage{{
			Text:    "📭 Todavía no hay vehículos publicados. ¡Vuelve pronto!",
			Buttons: [][]entity.Button{{entity.URLButton("🌐 Abrir el sitio", srv.baseURL+"/vehiculos")}},
		}}
	}

	return srv.listReplies("🆕 <b>Publicaciones más recientes</b>", listings, srv.baseURL+"/vehiculos")
}

func (srv *commandService) handleBrands(ctx context.Context, _ entity.InboundUpdate, _ string) []entity.OutboundMessage {
	brands, err := srv.listings.Brands(ctx)
	if err != nil {
		return []entity.OutboundMessage{{Text: searchErrorText}}
	}
	if len(brands) == 0 {
		return []entity.OutboundMessage{{Text: "📭 Todavía no hay marcas con vehículos publicados."}}
	}

	lines := make([]string, 0, len(brands))
	for _, brand := range brands {
		lines = append(lines, "\n• "+esc(brand))
	}

	return []entity.OutboundMessage{{
		Text: fitLines("🏷 <b>Marcas disponibles</b>\n", lines,
			"\n\nEscribe el nombre de una marca para ver sus vehículos.",
			func(omitted int) string {
				return fmt.Sprintf("\n… y %d marcas más, míralas todas en la web.", omitted)
			}),
		Buttons: [][]entity.Button{{entity.URLButton("🌐 Ver todos en la web", srv.baseURL+"/vehiculos")}},
	}}
}

func (srv *commandService) handleStatus(ctx context.Context, update entity.InboundUpdate, _ string) []entity.OutboundMessage {
	listings, err := srv.listings.OwnedBy(ctx, chatUserID(update))
	if err != nil {
		return []entity.OutboundMessage{{Text: genericErrorText}}
	}

	if len(listings) == 0 {
		return []entity.OutboundMessage{{
			Text: "📭 No encontré publicaciones asociadas a tu cuenta.\n\n" +
				"Para publicar:\n1. Regístrate en el sitio\n2. Vincula tu cuenta desde tu perfil\n3. Publica tu vehículo",
			Buttons: [][]entity.Button{
				{entity.URLButton("➕ Publicar vehículo", srv.baseURL+"/vehiculos/nuevo")},
				profileButton(srv.baseURL),
			},
		}}
	}

	lines := make([]string, 0, len(listings))
	for _, listing := range listings {
		glyph, label := statusLabel(listing.StatusOrEmpty())
		lines = append(lines, fmt.Sprintf("\n\n%s <b>%s %s</b> (%d) - %s\n🔗 %s",
			glyph, esc(listing.Brand), esc(listing.Model), listing.Year, label, srv.composer.ListingURL(listing.ID)))
	}

	return []entity.OutboundMessage{{
		Text: fitLines("📋 <b>Estado de tus publicaciones</b>", lines, "",
			func(omitted int) string {
				return fmt.Sprintf("\n\n… y %d publicaciones más. Ver todas en tu perfil.", omitted)
			}),
		Buttons: [][]entity.Button{profileButton(srv.baseURL)},
	}}
}

func statusLabel(status string) (string, string) {
	switch status {
	case constants.ListingStatusPending:
		return "⏳", "Pendiente de revisión"
	case constants.ListingStatusApproved:
		return "✅", "Aprobado"
	case constants.ListingStatusRejected:
		return "❌", "Rechazado"
	case constants.ListingStatusSold:
		return "💰", "Vendido"
	default:
		return "❔", "Estado desconocido"
	}
}

func (srv *commandService) handleNotifications(ctx context.Context, update entity.InboundUpdate, _ string) []entity.OutboundMessage {
	user, err := srv.userRepo.FindByChatUserID(ctx, chatUserID(update))
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return []entity.OutboundMessage{srv.linkRequiredMessage()}
	case err != nil:
		srv.log(ctx).Error("[Command] Failed to load notification preference", slog.Any("error", err))

		return []entity.OutboundMessage{{Text: genericErrorText}}
	}

	state := "🔕 Tus notificaciones están <b>desactivadas</b>."
	toggle := entity.CallbackButton("🔔 Activar notificaciones", callbackNotificationsOn)
	if user.WantsNotifications() {
		state = "🔔 Tus notificaciones están <b>activadas</b>."
		toggle = entity.CallbackButton("🔕 Desactivar notificaciones", callbackNotificationsOff)
	}

	return []entity.OutboundMessage{{
		Text: state + "\n\nTe avisamos sobre tus publicaciones, cambios de precio en tus favoritos " +
			"y nuevos vehículos. El resumen semanal se configura desde tu perfil.",
		Buttons: [][]entity.Button{{toggle}, profileButton(srv.baseURL)},
	}}
}

func (srv *commandService) setNotifications(ctx context.Context, update entity.InboundUpdate, enabled bool) []entity.OutboundMessage {
	err := srv.userRepo.SetNotificationsEnabled(ctx, chatUserID(update), enabled)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return []entity.OutboundMessage{srv.linkRequiredMessage()}
	case err != nil:
		srv.log(ctx).Error("[Command] Failed to update notification preference",
			slog.Bool("enabled", enabled),
			slog.Any("error", err),
		)

		return []entity.OutboundMessage{{Text: genericErrorText}}
	}

	if enabled {
		return []entity.OutboundMessage{{Text: "🔔 Listo, volverás a recibir notificaciones."}}
	}

	return []entity.OutboundMessage{{Text: "🔕 Listo, ya no recibirás notificaciones. Puedes reactivarlas con /notificaciones."}}
}

func (srv *commandService) linkRequiredMessage() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🔗 Tu chat todavía no está vinculado a una cuenta.\n\n" +
			"Entra a tu perfil en el sitio y usa la opción <b>Vincular Telegram</b>.",
		Buttons: [][]entity.Button{profileButton(srv.baseURL)},
	}
}

func (srv *commandService) handleStats(ctx context.Context, _ entity.InboundUpdate, _ string) []entity.OutboundMessage {
	stats, err := srv.listings.Stats(ctx, srv.now().Add(-statsWindow))
	if err != nil {
		return []entity.OutboundMessage{{Text: genericErrorText}}
	}

	return []entity.OutboundMessage{srv.composer.MarketSummary(stats)}
}

func (srv *commandService) handleContact(_ context.Context, _ entity.InboundUpdate, _ string) []entity.OutboundMessage {
	return []entity.OutboundMessage{srv.contactMessage()}
}

func (srv *commandService) contactMessage() entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("📞 <b>Contacto</b>\n\n")
	if srv.site.ContactEmail != "" {
		fmt.Fprintf(&b, "📧 %s\n", esc(srv.site.ContactEmail))
	}
	if srv.site.ContactPhone != "" {
		fmt.Fprintf(&b, "📱 %s\n", esc(srv.site.ContactPhone))
	}
	b.WriteString("\nTambién puedes escribirnos desde el sitio.")

	buttons := [][]entity.Button{}
	if support := strings.TrimPrefix(srv.site.SupportUsername, "@"); support != "" {
		buttons = append(buttons, []entity.Button{entity.URLButton("💬 Hablar con soporte", "https://t.me/"+support)})
	}
	buttons = append(buttons, []entity.Button{entity.URLButton("🌐 Formulario de contacto", srv.baseURL+"/contacto")})

	return entity.OutboundMessage{Text: b.String(), Buttons: buttons}
}

func (srv *commandService) handleWeb(_ context.Context, _ entity.InboundUpdate, _ string) []entity.OutboundMessage {
	return []entity.OutboundMessage{{
		Text: "🌐 Visita el marketplace para ver todas las publicaciones, guardar favoritos y publicar tu vehículo.",
		Buttons: [][]entity.Button{
			{entity.URLButton("🚗 Ver vehículos", srv.baseURL+"/vehiculos")},
			{entity.URLButton("➕ Publicar vehículo", srv.baseURL+"/vehiculos/nuevo")},
		},
	}}
}

// handleCallback serves an inline button press. The callback is always
// answered so the client stops its progress indicator.
func (srv *commandService) handleCallback(ctx context.Context, update entity.InboundUpdate) {
	srv.metrics.CommandsHandled.WithLabelValues("callback").Inc()

	data := update.CallbackData
	var replies []entity.OutboundMessage
	switch {
	case strings.HasPrefix(data, callbackSearchPrefix):
		category := strings.TrimPrefix(data, callbackSearchPrefix)
		if category == "" {
			replies = []entity.OutboundMessage{{Text: unknownOptionText}}

			break
		}
		replies = srv.search(ctx, entity.SearchFilter{Query: &category})
	case data == callbackContactSupport:
		replies = []entity.OutboundMessage{srv.contactMessage()}
	case data == callbackLatest:
		replies = srv.handleLatest(ctx, update, "")
	case data == callbackBrands:
		replies = srv.handleBrands(ctx, update, "")
	case data == callbackNotificationsOn:
		replies = srv.setNotifications(ctx, update, true)
	case data == callbackNotificationsOff:
		replies = srv.setNotifications(ctx, update, false)
	default:
		srv.log(ctx).Warn("[Command] Unknown callback data", slog.String("data", data))
		replies = []entity.OutboundMessage{{Text: unknownOptionText}}
	}

	if err := srv.messenger.AnswerCallback(ctx, update.CallbackID, ""); err != nil {
		srv.log(ctx).Warn("[Command] Failed to answer callback", slog.Any("error", err))
	}

	if update.ChatID != "" {
		srv.reply(ctx, update.ChatID, replies...)
	}
}

// reply sends messages in order. A failed send is logged and the
// remaining messages are skipped.
func (srv *commandService) reply(ctx context.Context, chatID string, messages ...entity.OutboundMessage) {
	for _, msg := range messages {
		if err := srv.messenger.Send(ctx, chatID, msg); err != nil {
			srv.log(ctx).Error("[Command] Failed to send reply",
				slog.String("chat_id", chatID),
				slog.Any("error", err),
			)

			return
		}
	}
}

func chatUserID(update entity.InboundUpdate) string {
	if update.SenderID != "" {
		return update.SenderID
	}

	return update.ChatID
}
