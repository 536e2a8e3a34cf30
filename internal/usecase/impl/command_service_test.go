package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/repository"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	mockRepo "marketbot/internal/mocks/repository"
	mockSvc "marketbot/internal/mocks/service"
	mockUsecase "marketbot/internal/mocks/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commandFixtures struct {
	service     *commandService
	accountLink *mockUsecase.MockAccountLinkUsecase
	listings    *mockUsecase.MockListingQueryUsecase
	messenger   *mockSvc.MockMessenger
	userRepo    *mockRepo.MockUserRepository
	metrics     *metrics.Metrics
}

func createTestCommandService(t *testing.T) commandFixtures {
	fx := commandFixtures{
		accountLink: mockUsecase.NewMockAccountLinkUsecase(t),
		listings:    mockUsecase.NewMockListingQueryUsecase(t),
		messenger:   mockSvc.NewMockMessenger(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		metrics:     metrics.New(),
	}

	fx.service = NewCommandService(CommandServiceParams{
		AccountLink: fx.accountLink,
		Listings:    fx.listings,
		Composer:    newTestComposer(),
		Messenger:   fx.messenger,
		UserRepo:    fx.userRepo,
		Metrics:     fx.metrics,
		Config:      testConfig(),
		Logger:      testLogger(),
	}).(*commandService)

	return fx
}

// captureSends records every message sent to chatID.
func (fx commandFixtures) captureSends(chatID string) *[]entity.OutboundMessage {
	sent := &[]entity.OutboundMessage{}
	fx.messenger.EXPECT().
		Send(mock.Anything, chatID, mock.AnythingOfType("entity.OutboundMessage")).
		Run(func(_ context.Context, _ string, msg entity.OutboundMessage) {
			*sent = append(*sent, msg)
		}).
		Return(nil)

	return sent
}

func textUpdate(text string) entity.InboundUpdate {
	return entity.InboundUpdate{UpdateID: 1, ChatID: "555", SenderID: "777", SenderName: "Ana", Text: text}
}

func callbackUpdate(data string) entity.InboundUpdate {
	return entity.InboundUpdate{UpdateID: 2, ChatID: "555", SenderID: "777", CallbackID: "cb-1", CallbackData: data}
}

func listingsOf(n int) []*entity.ListingSummary {
	listings := make([]*entity.ListingSummary, 0, n)
	for i := 0; i < n; i++ {
		listing := testListing()
		listing.ID = fmt.Sprintf("64b7f0c2a1b2c3d4e5f607%02d", i)
		listings = append(listings, listing)
	}

	return listings
}

func TestSplitCommand(t *testing.T) {
	name, args := splitCommand("/buscar@MarketBot  toyota corolla ")
	assert.Equal(t, "/buscar", name)
	assert.Equal(t, "toyota corolla", args)

	name, args = splitCommand("/help")
	assert.Equal(t, "/help", name)
	assert.Empty(t, args)
}

func TestCommandService_FreeTextPriceSearch(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()

	fx.listings.EXPECT().
		Search(ctx, mock.AnythingOfType("entity.SearchFilter")).
		Run(func(_ context.Context, filter entity.SearchFilter) {
			require.NotNil(t, filter.MaxPrice)
			assert.InDelta(t, 15000, *filter.MaxPrice, 0.001)
			assert.Nil(t, filter.Query)
		}).
		Return(listingsOf(2), nil)
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(ctx, textUpdate("precio max 15000"))

	require.Len(t, *sent, 1)
	msg := (*sent)[0]
	assert.Equal(t, 2, strings.Count(msg.Text, "🔗"))
	require.True(t, msg.HasURLButton())
	assert.Equal(t, "https://autos.example.com/vehiculos?precioMax=15000", msg.Buttons[0][0].URL)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.CommandsHandled.WithLabelValues("text")))
}

func TestCommandService_MoreThanFiveResults(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()

	fx.listings.EXPECT().Search(ctx, mock.Anything).Return(listingsOf(8), nil)
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(ctx, textUpdate("Toyota"))

	require.Len(t, *sent, 2)
	assert.Contains(t, (*sent)[0].Text, "Encontré 8 vehículos")
	assert.Equal(t, 5, strings.Count((*sent)[1].Text, "🔗"))
	assert.Contains(t, (*sent)[1].Buttons[0][0].URL, "q=toyota")
}

func TestCommandService_NoResults(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()

	fx.listings.EXPECT().Search(ctx, mock.Anything).Return([]*entity.ListingSummary{}, nil)
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(ctx, textUpdate("lamborghini"))

	require.Len(t, *sent, 1)
	assert.Contains(t, (*sent)[0].Text, "No encontré vehículos")
	assert.Contains(t, (*sent)[0].Text, "/marcas")
}

func TestCommandService_SearchFailure(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()

	fx.listings.EXPECT().Search(ctx, mock.Anything).Return([]*entity.ListingSummary{}, errors.New("timeout"))
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(ctx, textUpdate("mazda 3"))

	require.Len(t, *sent, 1)
	assert.Equal(t, searchErrorText, (*sent)[0].Text)
}

func TestCommandService_IntentReplies(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{name: "greeting", text: "Hola!", expect: "¿Qué vehículo estás buscando?"},
		{name: "pricing", text: "cuanto cuesta", expect: "precio máximo"},
		{name: "selling", text: "quiero vender mi carro", expect: "publícalo en el sitio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommandService(t)
			sent := fx.captureSends("555")

			fx.service.HandleUpdate(context.Background(), textUpdate(tt.text))

			require.Len(t, *sent, 1)
			assert.Contains(t, (*sent)[0].Text, tt.expect)
			fx.listings.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestCommandService_HelpAndUnknownCommands(t *testing.T) {
	for _, text := range []string{"/help", "/help@MarketBot", "/desconocido"} {
		t.Run(text, func(t *testing.T) {
			fx := createTestCommandService(t)
			sent := fx.captureSends("555")

			fx.service.HandleUpdate(context.Background(), textUpdate(text))

			require.Len(t, *sent, 1)
			assert.Contains(t, (*sent)[0].Text, "Comandos disponibles")
		})
	}
}

func TestCommandService_StartDelegatesToAccountLinker(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()
	update := textUpdate("/start abc123")

	fx.accountLink.EXPECT().
		HandleStart(ctx, update, "abc123").
		Return(entity.OutboundMessage{Text: "linked"})
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(ctx, update)

	require.Len(t, *sent, 1)
	assert.Equal(t, "linked", (*sent)[0].Text)
}

func TestCommandService_SearchCommand(t *testing.T) {
	t.Run("without terms", func(t *testing.T) {
		fx := createTestCommandService(t)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(context.Background(), textUpdate("/buscar"))

		require.Len(t, *sent, 1)
		assert.Contains(t, (*sent)[0].Text, "Dime qué buscas")
	})

	t.Run("keyword intent is still searched", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		query := "hola"
		fx.listings.EXPECT().Search(ctx, entity.SearchFilter{Query: &query}).Return([]*entity.ListingSummary{}, nil)
		fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/buscar Hola"))
	})
}

func TestCommandService_Status(t *testing.T) {
	t.Run("lists owned listings with glyphs", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		listings := listingsOf(5)
		for i, status := range []string{"pending", "approved", "rejected", "sold"} {
			listings[i].Status = strPtr(status)
		}
		fx.listings.EXPECT().OwnedBy(ctx, "777").Return(listings, nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/estado"))

		require.Len(t, *sent, 1)
		for _, glyph := range []string{"⏳", "✅", "❌", "💰", "❔"} {
			assert.Contains(t, (*sent)[0].Text, glyph)
		}
	})

	t.Run("no listings", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		fx.listings.EXPECT().OwnedBy(ctx, "777").Return([]*entity.ListingSummary{}, nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/estado"))

		require.Len(t, *sent, 1)
		assert.Contains(t, (*sent)[0].Text, "No encontré publicaciones")
	})
}

func TestCommandService_LongListsFitOneMessage(t *testing.T) {
	t.Run("status of a dealer with many listings", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		listings := listingsOf(60)
		fx.listings.EXPECT().OwnedBy(ctx, "777").Return(listings, nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/estado"))

		require.Len(t, *sent, 1)
		text := (*sent)[0].Text
		assert.LessOrEqual(t, messageLength(text), maxMessageLength)
		assert.Contains(t, text, listings[0].ID)
		assert.NotContains(t, text, listings[59].ID)
		assert.Contains(t, text, "publicaciones más. Ver todas en tu perfil.")
	})

	t.Run("brands", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		brands := make([]string, 0, 600)
		for i := range 600 {
			brands = append(brands, fmt.Sprintf("Marca número %03d", i))
		}
		fx.listings.EXPECT().Brands(ctx).Return(brands, nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/marcas"))

		require.Len(t, *sent, 1)
		text := (*sent)[0].Text
		assert.LessOrEqual(t, messageLength(text), maxMessageLength)
		assert.Contains(t, text, "Marca número 000")
		assert.Contains(t, text, "marcas más")
		assert.True(t, strings.HasSuffix(text, "para ver sus vehículos."))
	})
}

func TestFitLines(t *testing.T) {
	overflow := func(n int) string { return fmt.Sprintf(" +%d", n) }

	assert.Equal(t, "H:a:b.", fitLines("H", []string{":a", ":b"}, ".", overflow))

	long := strings.Repeat("x", maxMessageLength/2)
	text := fitLines("H", []string{long, long, long}, ".", overflow)
	assert.Equal(t, "H"+long+" +2.", text)
}

func TestCommandService_Notifications(t *testing.T) {
	t.Run("unlinked chat", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByChatUserID(ctx, "777").Return(nil, errors.WithStack(repository.ErrUserNotFound))
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/notificaciones"))

		require.Len(t, *sent, 1)
		assert.Contains(t, (*sent)[0].Text, "no está vinculado")
	})

	t.Run("enabled by default", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByChatUserID(ctx, "777").Return(&entity.User{ID: "u1"}, nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, textUpdate("/notificaciones"))

		require.Len(t, *sent, 1)
		assert.Contains(t, (*sent)[0].Text, "activadas")
		assert.Equal(t, callbackNotificationsOff, (*sent)[0].Buttons[0][0].CallbackData)
	})

	t.Run("disable through callback", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().SetNotificationsEnabled(ctx, "777", false).Return(nil)
		fx.messenger.EXPECT().AnswerCallback(ctx, "cb-1", "").Return(nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, callbackUpdate(callbackNotificationsOff))

		require.Len(t, *sent, 1)
		assert.Contains(t, (*sent)[0].Text, "ya no recibirás")
	})
}

func TestCommandService_Callbacks(t *testing.T) {
	t.Run("category search", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		category := "suv"
		fx.listings.EXPECT().Search(ctx, entity.SearchFilter{Query: &category}).Return(listingsOf(1), nil)
		fx.messenger.EXPECT().AnswerCallback(ctx, "cb-1", "").Return(nil)
		fx.captureSends("555")

		fx.service.HandleUpdate(ctx, callbackUpdate("search_suv"))
	})

	t.Run("latest", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		fx.listings.EXPECT().Latest(ctx, 0).Return(listingsOf(3), nil)
		fx.messenger.EXPECT().AnswerCallback(ctx, "cb-1", "").Return(nil)
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, callbackUpdate(callbackLatest))

		require.Len(t, *sent, 1)
		assert.Contains(t, (*sent)[0].Text, "Publicaciones más recientes")
	})

	t.Run("unknown data is still answered", func(t *testing.T) {
		fx := createTestCommandService(t)
		ctx := context.Background()

		fx.messenger.EXPECT().AnswerCallback(ctx, "cb-1", "").Return(errors.New("query is too old"))
		sent := fx.captureSends("555")

		fx.service.HandleUpdate(ctx, callbackUpdate("borrar_todo"))

		require.Len(t, *sent, 1)
		assert.Equal(t, unknownOptionText, (*sent)[0].Text)
	})
}

func TestCommandService_ContactAndWeb(t *testing.T) {
	fx := createTestCommandService(t)
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(context.Background(), textUpdate("/contacto"))
	fx.service.HandleUpdate(context.Background(), textUpdate("/web"))

	require.Len(t, *sent, 2)
	assert.Contains(t, (*sent)[0].Text, "soporte@autos.example.com")
	assert.Equal(t, "https://t.me/autos_soporte", (*sent)[0].Buttons[0][0].URL)
	assert.Equal(t, "https://autos.example.com/vehiculos", (*sent)[1].Buttons[0][0].URL)
}

func TestCommandService_Stats(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return now }

	fx.listings.EXPECT().
		Stats(ctx, now.Add(-7*24*time.Hour)).
		Return(&entity.MarketStats{TotalListings: 12000, NewThisWeek: 35}, nil)
	sent := fx.captureSends("555")

	fx.service.HandleUpdate(ctx, textUpdate("/estadisticas"))

	require.Len(t, *sent, 1)
	assert.Contains(t, (*sent)[0].Text, "12.000")
}

func TestCommandService_SendFailureStopsReplies(t *testing.T) {
	fx := createTestCommandService(t)
	ctx := context.Background()

	fx.listings.EXPECT().Search(ctx, mock.Anything).Return(listingsOf(7), nil)
	fx.messenger.EXPECT().Send(ctx, "555", mock.Anything).Return(errors.New("bot was blocked by the user")).Once()

	assert.NotPanics(t, func() {
		fx.service.HandleUpdate(ctx, textUpdate("toyota"))
	})
}

func TestCommandService_IgnoresEmptyText(t *testing.T) {
	fx := createTestCommandService(t)

	fx.service.HandleUpdate(context.Background(), entity.InboundUpdate{ChatID: "555", Text: "  "})

	fx.messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
